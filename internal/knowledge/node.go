package knowledge

import (
	"sort"
	"strings"
)

// DefaultRating is assumed for moves whose stats carry no rating.
const DefaultRating = 1200

// Node is one position in the move tree. Moves maps SAN notation to the
// child node reached by playing that move.
type Node struct {
	Moves    map[string]*Node `json:"moves,omitempty"`
	Stats    *Stats           `json:"stats,omitempty"`
	Position string           `json:"position,omitempty"`
}

// Stats carries the statistics recorded for a move. Fields that need a
// present/absent distinction are pointers; the rest default to zero.
type Stats struct {
	Rating       *float64 `json:"rating,omitempty"`
	TimesPlayed  int      `json:"timesPlayed,omitempty"`
	Wins         int      `json:"wins,omitempty"`
	Losses       int      `json:"losses,omitempty"`
	Draws        int      `json:"draws,omitempty"`
	Type         string   `json:"type,omitempty"`
	Position     string   `json:"position,omitempty"`
	TimesVisited *int     `json:"timesVisited,omitempty"`
	FirstSeen    *int64   `json:"firstSeen,omitempty"`
}

// NewRoot returns an empty tree root with zeroed visit stats.
func NewRoot() *Node {
	return &Node{
		Moves: map[string]*Node{},
		Stats: &Stats{TimesVisited: intPtr(0), FirstSeen: int64Ptr(0)},
	}
}

// NewPathNode returns a placeholder node used to materialize an
// intermediate step on a kept move's path.
func NewPathNode() *Node {
	return &Node{
		Moves: map[string]*Node{},
		Stats: &Stats{TimesVisited: intPtr(0)},
	}
}

// EffectivePosition resolves the node's position with the documented
// precedence: own position, then stats.position. Returns "" when the
// node carries no position data.
func (n *Node) EffectivePosition() string {
	if n == nil {
		return ""
	}
	if n.Position != "" {
		return n.Position
	}
	if n.Stats != nil && n.Stats.Position != "" {
		return n.Stats.Position
	}
	return ""
}

// MoveKeys returns the node's move notations in sorted order. Map
// iteration order is randomized in Go, so every traversal goes through
// this to stay reproducible.
func (n *Node) MoveKeys() []string {
	if n == nil || len(n.Moves) == 0 {
		return nil
	}
	keys := make([]string, 0, len(n.Moves))
	for k := range n.Moves {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CountMoves returns the total number of moves in the subtree.
func (n *Node) CountMoves() int {
	if n == nil {
		return 0
	}
	count := len(n.Moves)
	for _, child := range n.Moves {
		count += child.CountMoves()
	}
	return count
}

// RatingOrDefault returns the recorded rating, or DefaultRating when
// stats are absent or carry no rating.
func (s *Stats) RatingOrDefault() float64 {
	if s == nil || s.Rating == nil {
		return DefaultRating
	}
	return *s.Rating
}

// PlayCount returns timesPlayed, zero when stats are absent.
func (s *Stats) PlayCount() int {
	if s == nil {
		return 0
	}
	return s.TimesPlayed
}

// WinRate returns (wins + draws/2) / total, or 0.5 when no results are
// recorded.
func (s *Stats) WinRate() float64 {
	if s == nil {
		return 0.5
	}
	total := s.Wins + s.Losses + s.Draws
	if total == 0 {
		return 0.5
	}
	return (float64(s.Wins) + 0.5*float64(s.Draws)) / float64(total)
}

// IsCapture reports whether the move's type tag marks it as a capture.
func (s *Stats) IsCapture() bool {
	return s != nil && strings.Contains(strings.ToLower(s.Type), "capture")
}

// IsCheck reports whether the move's type tag marks it as a check.
func (s *Stats) IsCheck() bool {
	return s != nil && strings.Contains(strings.ToLower(s.Type), "check")
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
