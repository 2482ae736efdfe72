package levels

import (
	"sort"
	"strings"

	"github.com/freeeve/chesslevels/internal/analysis"
)

// OpeningCount is one mined opening line: the space-joined move
// sequence, how many scored moves share it, and an optional name looked
// up from an ECO database.
type OpeningCount struct {
	Sequence string `json:"sequence"`
	Name     string `json:"name,omitempty"`
	Count    int    `json:"count"`
}

// openingMaxDepth bounds which moves count toward opening mining.
const openingMaxDepth = 10

// CommonOpenings tallies the move sequences of opening-phase moves at
// depth < 10 and returns the top max sequences by count. Ties are
// broken by sequence string so the ranking is deterministic.
func CommonOpenings(moves []analysis.ScoredMove, max int) []OpeningCount {
	tally := map[string]int{}
	for _, m := range moves {
		if m.Depth >= openingMaxDepth || m.GamePhase != analysis.PhaseOpening {
			continue
		}
		tally[strings.Join(m.MoveSequence, " ")]++
	}

	out := make([]OpeningCount, 0, len(tally))
	for sequence, count := range tally {
		out = append(out, OpeningCount{Sequence: sequence, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Sequence < out[j].Sequence
	})

	if len(out) > max {
		out = out[:max]
	}
	return out
}
