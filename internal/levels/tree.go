package levels

import (
	"github.com/freeeve/chesslevels/internal/analysis"
	"github.com/freeeve/chesslevels/internal/knowledge"
)

// BuildLevelTree rebuilds a minimal move tree containing exactly the
// given moves. Each move's original root-to-move path is recreated:
// intermediate nodes missing from the new tree are materialized as
// placeholders, and the move's original subtree is attached under its
// final key. Paths already created by earlier moves are reused, never
// overwritten.
func BuildLevelTree(moves []analysis.ScoredMove) *knowledge.Node {
	root := knowledge.NewRoot()
	for _, m := range moves {
		cur := root
		for _, step := range m.Path {
			child, ok := cur.Moves[step]
			if !ok {
				child = knowledge.NewPathNode()
				cur.Moves[step] = child
			}
			cur = child
		}
		if cur.Moves == nil {
			cur.Moves = map[string]*knowledge.Node{}
		}
		cur.Moves[m.Move] = m.Node
	}
	return root
}
