package levels

import (
	"sort"

	"github.com/freeeve/chesslevels/internal/analysis"
)

// NumLevels is the number of difficulty levels moves are split into.
const NumLevels = 8

// LevelPercentages is the share of the sorted move population assigned
// to each level. Intermediate levels get most of the moves, the
// extremes get few.
var LevelPercentages = [NumLevels]int{5, 10, 15, 20, 20, 15, 10, 5}

// Stratify sorts moves ascending by difficulty and partitions them into
// NumLevels contiguous slices using LevelPercentages. Slice sizes are
// floored; whatever remains after the first seven floors lands in the
// last level. The sort is stable, so ties keep their emission order and
// the split is deterministic.
func Stratify(moves []analysis.ScoredMove) [NumLevels][]analysis.ScoredMove {
	sorted := make([]analysis.ScoredMove, len(moves))
	copy(sorted, moves)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Difficulty < sorted[j].Difficulty
	})

	var out [NumLevels][]analysis.ScoredMove
	start := 0
	for level, pct := range LevelPercentages {
		if level == NumLevels-1 {
			// Floored share plus the rounding remainder.
			out[level] = sorted[start:]
			break
		}
		end := start + pct*len(sorted)/100
		if end > len(sorted) {
			end = len(sorted)
		}
		out[level] = sorted[start:end]
		start = end
	}
	return out
}
