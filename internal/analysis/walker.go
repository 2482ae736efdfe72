package analysis

import "github.com/freeeve/chesslevels/internal/knowledge"

// ScoredMove is one move lifted out of the tree with its difficulty and
// the context needed to place it back into a rebuilt tree.
type ScoredMove struct {
	Move          string
	Path          []string // moves from the root to the parent node
	MoveSequence  []string // Path plus the move itself
	Depth         int
	Difficulty    float64
	Rating        float64
	TimesPlayed   int
	WinRate       float64
	GamePhase     string
	PhaseProgress float64
	Complexity    float64
	Node          *knowledge.Node // the move's original subtree
}

// Walk traverses the whole tree depth-first and returns every move with
// its difficulty score. Moves at each node are visited in sorted
// notation order so the output is reproducible run to run.
func Walk(root *knowledge.Node) []ScoredMove {
	var out []ScoredMove
	walk(root, 0, nil, nil, "", &out)
	return out
}

func walk(node *knowledge.Node, depth int, path, sequence []string, inherited string, out *[]ScoredMove) {
	if node == nil {
		return
	}

	position := node.EffectivePosition()
	if position == "" {
		position = inherited
	}

	phase := UnknownPhase
	complexity := DefaultComplexity
	if position != "" {
		pc := CountPieces(position)
		phase = DeterminePhase(pc)
		complexity = PositionComplexity(pc)
	}

	for _, notation := range node.MoveKeys() {
		child := node.Moves[notation]
		stats := child.Stats

		childSequence := extend(sequence, notation)
		score := DifficultyScore(ScoreInput{
			Rating:       stats.RatingOrDefault(),
			TimesPlayed:  stats.PlayCount(),
			WinRate:      stats.WinRate(),
			Depth:        depth,
			HasChildren:  len(child.Moves) > 0,
			Phase:        phase,
			Complexity:   complexity,
			MoveSequence: childSequence,
			IsCapture:    stats.IsCapture(),
			IsCheck:      stats.IsCheck(),
		})

		*out = append(*out, ScoredMove{
			Move:          notation,
			Path:          path,
			MoveSequence:  childSequence,
			Depth:         depth,
			Difficulty:    score,
			Rating:        stats.RatingOrDefault(),
			TimesPlayed:   stats.PlayCount(),
			WinRate:       stats.WinRate(),
			GamePhase:     phase.Name,
			PhaseProgress: phase.Progress,
			Complexity:    complexity,
			Node:          child,
		})

		// The child inherits the resolved position unless it carries
		// its own.
		next := child.EffectivePosition()
		if next == "" {
			next = position
		}
		walk(child, depth+1, childSequence, childSequence, next, out)
	}
}

// extend copies base and appends move, so sibling branches never share
// backing arrays.
func extend(base []string, move string) []string {
	seq := make([]string, 0, len(base)+1)
	seq = append(seq, base...)
	return append(seq, move)
}
