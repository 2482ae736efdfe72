package analysis

import "strings"

// Piece indices into PieceCounts. Uppercase letters are white pieces,
// lowercase black, following FEN convention.
const (
	WhitePawn = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NumPieceKinds
)

// PieceCounts holds per-kind piece counts for one position.
type PieceCounts [NumPieceKinds]int

// Game phase names.
const (
	PhaseOpening    = "opening"
	PhaseMiddlegame = "middlegame"
	PhaseEndgame    = "endgame"
	PhaseUnknown    = "unknown"
)

// Phase is a coarse game-phase classification with a progress value in
// [0,1] indicating how far into the phase the position is.
type Phase struct {
	Name     string
	Progress float64
}

// UnknownPhase is assumed when no position data is available anywhere on
// a move's path.
var UnknownPhase = Phase{Name: PhaseUnknown, Progress: 0.5}

// DefaultComplexity is the complexity assumed without position data.
const DefaultComplexity = 0.5

func pieceIndex(c byte) int {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	}
	return -1
}

// CountPieces counts piece letters in a position string. If the string
// contains a space only the part before it is used, so full FEN strings
// reduce to their piece-placement field. Malformed or empty input yields
// all-zero counts.
func CountPieces(position string) PieceCounts {
	var pc PieceCounts
	if i := strings.IndexByte(position, ' '); i >= 0 {
		position = position[:i]
	}
	for i := 0; i < len(position); i++ {
		if idx := pieceIndex(position[i]); idx >= 0 {
			pc[idx]++
		}
	}
	return pc
}

// WhiteMaterial returns white's material in pawn units, king excluded.
func (pc PieceCounts) WhiteMaterial() int {
	return pc[WhitePawn] + pc[WhiteKnight]*3 + pc[WhiteBishop]*3 + pc[WhiteRook]*5 + pc[WhiteQueen]*9
}

// BlackMaterial returns black's material in pawn units, king excluded.
func (pc PieceCounts) BlackMaterial() int {
	return pc[BlackPawn] + pc[BlackKnight]*3 + pc[BlackBishop]*3 + pc[BlackRook]*5 + pc[BlackQueen]*9
}

// nonPawnPieces counts all pieces except pawns and kings, both sides.
func (pc PieceCounts) nonPawnPieces() int {
	return pc[WhiteKnight] + pc[WhiteBishop] + pc[WhiteRook] + pc[WhiteQueen] +
		pc[BlackKnight] + pc[BlackBishop] + pc[BlackRook] + pc[BlackQueen]
}

// DeterminePhase classifies the game phase from piece counts. Rules are
// evaluated in order; the first match wins.
func DeterminePhase(pc PieceCounts) Phase {
	if pc.nonPawnPieces() >= 12 && pc[WhiteQueen] >= 1 && pc[BlackQueen] >= 1 {
		return Phase{Name: PhaseOpening, Progress: 0.0}
	}
	total := pc.WhiteMaterial() + pc.BlackMaterial()
	switch {
	case total >= 30:
		return Phase{Name: PhaseOpening, Progress: clamp01(float64(40-total) / 10)}
	case total >= 20:
		return Phase{Name: PhaseMiddlegame, Progress: float64(30-total) / 10}
	case total >= 10:
		return Phase{Name: PhaseEndgame, Progress: float64(20-total) / 10}
	default:
		return Phase{Name: PhaseEndgame, Progress: 1.0}
	}
}

// PositionComplexity estimates how complex a position is from its piece
// configuration: piece density dominates, material imbalance reduces it
// slightly, queens on the board add a flat bonus. Result is in [0,1].
func PositionComplexity(pc PieceCounts) float64 {
	minor := float64(pc[WhiteKnight] + pc[WhiteBishop] + pc[BlackKnight] + pc[BlackBishop])
	major := float64(pc[WhiteRook] + pc[WhiteQueen] + pc[BlackRook] + pc[BlackQueen])
	pawns := float64(pc[WhitePawn] + pc[BlackPawn])

	pieceComplexity := (minor*0.7 + major*1.2 + pawns*0.4) / 20

	imbalance := float64(pc.WhiteMaterial()-pc.BlackMaterial()) / 32
	if imbalance < 0 {
		imbalance = -imbalance
	}

	queenBonus := 0.0
	if pc[WhiteQueen] > 0 || pc[BlackQueen] > 0 {
		queenBonus = 0.2
	}

	return clamp01(pieceComplexity*0.6 + (1-imbalance)*0.2 + queenBonus)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
