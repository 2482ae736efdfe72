package analysis

import "unicode"

// ScoreInput collects everything the difficulty heuristic looks at for
// a single move.
type ScoreInput struct {
	Rating       float64
	TimesPlayed  int
	WinRate      float64
	Depth        int
	HasChildren  bool
	Phase        Phase
	Complexity   float64
	MoveSequence []string
	IsCapture    bool
	IsCheck      bool
}

// theoryDepth is the depth up to which opening moves count as theory.
const theoryDepth = 10

// DifficultyScore computes a difficulty in [0,1] for one move. Pure and
// deterministic: identical inputs always produce the identical float.
func DifficultyScore(in ScoreInput) float64 {
	// Base difficulty from rating, normalized over the ~800-2800 range.
	difficulty := (in.Rating - 800) / 2000

	switch in.Phase.Name {
	case PhaseOpening:
		// Theory knowledge matters more than calculation early on.
		if in.Depth <= theoryDepth {
			strength := 1.0 - float64(in.Depth)/theoryDepth
			if strength < 0 {
				strength = 0
			}
			difficulty *= 0.7 + 0.3*strength
			// Popular book moves are easier for beginners.
			if in.TimesPlayed > 10 {
				difficulty *= 0.9
			}
		}
	case PhaseMiddlegame:
		difficulty *= 1.1
		if in.IsCapture || in.IsCheck {
			difficulty *= 1.15
		}
	case PhaseEndgame:
		if in.Phase.Progress > 0.7 {
			// Letters in the last move token proxy for how many piece
			// kinds are still in play.
			pieces := 0
			if n := len(in.MoveSequence); n > 0 {
				for _, c := range in.MoveSequence[n-1] {
					if unicode.IsLetter(c) {
						pieces++
					}
				}
			}
			if pieces <= 3 {
				difficulty *= 0.9 + in.Complexity*0.5
			} else {
				difficulty *= 1.2
			}
		}
	}

	difficulty *= 0.7 + 0.6*in.Complexity
	difficulty *= 1.0 + float64(in.Depth)*0.03

	// Rarely played moves tend to be more specialized.
	if in.TimesPlayed > 0 {
		difficulty *= 1.0 - 0.2/(1+0.05*float64(in.TimesPlayed))
	}

	// Balanced win rates indicate contested, harder positions.
	delta := in.WinRate - 0.5
	if delta < 0 {
		delta = -delta
	}
	difficulty *= 0.8 + 0.2*(1.0-delta*0.4)

	if in.HasChildren {
		difficulty *= 1.05
	}

	// Captures and checks are easy to spot but harder to calculate deep.
	if in.IsCapture || in.IsCheck {
		if in.Depth > 2 {
			difficulty *= 1.1
		} else {
			difficulty *= 0.95
		}
	}

	return clamp01(difficulty)
}
