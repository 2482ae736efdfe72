package analysis

import (
	"math"
	"testing"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestCountPieces(t *testing.T) {
	tests := []struct {
		name     string
		position string
		want     PieceCounts
	}{
		{
			name:     "starting position full FEN",
			position: startFEN,
			want: PieceCounts{
				WhitePawn: 8, WhiteKnight: 2, WhiteBishop: 2, WhiteRook: 2, WhiteQueen: 1, WhiteKing: 1,
				BlackPawn: 8, BlackKnight: 2, BlackBishop: 2, BlackRook: 2, BlackQueen: 1, BlackKing: 1,
			},
		},
		{
			name:     "placement field only",
			position: "4k3/8/8/8/8/8/4P3/4K3",
			want:     PieceCounts{WhitePawn: 1, WhiteKing: 1, BlackKing: 1},
		},
		{
			name:     "empty string",
			position: "",
			want:     PieceCounts{},
		},
		{
			name:     "garbage without piece letters",
			position: "1234 5678",
			want:     PieceCounts{},
		},
		{
			// Only the part before the first space is scanned, and any
			// piece letters in it still count.
			name:     "garbage first token with a piece letter",
			position: "not a position at all 123",
			want:     PieceCounts{BlackKnight: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountPieces(tt.position)
			if got != tt.want {
				t.Errorf("CountPieces(%q) = %v, want %v", tt.position, got, tt.want)
			}
		})
	}
}

func TestCountPieces_IgnoresTrailingFields(t *testing.T) {
	// The side-to-move and castling fields contain piece letters (w, K,
	// Q, k, q) that must not be counted.
	bare := CountPieces("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	full := CountPieces(startFEN)
	if bare != full {
		t.Errorf("full FEN counts %v differ from bare placement counts %v", full, bare)
	}
}

func TestDeterminePhase(t *testing.T) {
	tests := []struct {
		name         string
		pc           PieceCounts
		wantName     string
		wantProgress float64
	}{
		{
			name:         "starting position is early opening",
			pc:           CountPieces(startFEN),
			wantName:     PhaseOpening,
			wantProgress: 0.0,
		},
		{
			name: "twelve pieces and both queens",
			pc: PieceCounts{
				WhiteQueen: 1, BlackQueen: 1,
				WhiteKnight: 2, WhiteBishop: 2, WhiteRook: 1,
				BlackKnight: 2, BlackBishop: 2, BlackRook: 1,
			},
			wantName:     PhaseOpening,
			wantProgress: 0.0,
		},
		{
			name: "high material without queens is late opening",
			pc: PieceCounts{
				WhitePawn: 8, BlackPawn: 8,
				WhiteRook: 2, BlackRook: 2,
			},
			// total = 8+8+10+10 = 36
			wantName:     PhaseOpening,
			wantProgress: 0.4,
		},
		{
			name: "middlegame material",
			pc: PieceCounts{
				WhitePawn: 4, BlackPawn: 4,
				WhiteRook: 1, BlackRook: 1,
				WhiteKnight: 1, BlackKnight: 1,
			},
			// total = 4+4+5+5+3+3 = 24
			wantName:     PhaseMiddlegame,
			wantProgress: 0.6,
		},
		{
			name: "early endgame material",
			pc: PieceCounts{
				WhitePawn: 2, BlackPawn: 2,
				WhiteRook: 1, BlackKnight: 1,
			},
			// total = 2+2+5+3 = 12
			wantName:     PhaseEndgame,
			wantProgress: 0.8,
		},
		{
			name: "bare kings is late endgame",
			pc: PieceCounts{
				WhiteKing: 1, BlackKing: 1, WhitePawn: 1,
			},
			wantName:     PhaseEndgame,
			wantProgress: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeterminePhase(tt.pc)
			if got.Name != tt.wantName {
				t.Errorf("phase = %q, want %q", got.Name, tt.wantName)
			}
			if math.Abs(got.Progress-tt.wantProgress) > 1e-9 {
				t.Errorf("progress = %v, want %v", got.Progress, tt.wantProgress)
			}
		})
	}
}

func TestPositionComplexity(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		// No pieces: 0.6*0 + 0.2*(1-0) + 0 = 0.2
		got := PositionComplexity(PieceCounts{})
		if math.Abs(got-0.2) > 1e-9 {
			t.Errorf("complexity = %v, want 0.2", got)
		}
	})

	t.Run("starting position", func(t *testing.T) {
		// pieceComplexity = (8*0.7 + 6*1.2 + 16*0.4)/20 = 0.96
		// balanced material, queens on board: 0.96*0.6 + 0.2 + 0.2 = 0.976
		got := PositionComplexity(CountPieces(startFEN))
		if math.Abs(got-0.976) > 1e-9 {
			t.Errorf("complexity = %v, want 0.976", got)
		}
	})

	t.Run("clamped to one", func(t *testing.T) {
		pc := PieceCounts{WhiteQueen: 9, BlackQueen: 9}
		got := PositionComplexity(pc)
		if got != 1.0 {
			t.Errorf("complexity = %v, want 1.0", got)
		}
	})

	t.Run("in range for assorted counts", func(t *testing.T) {
		for pawns := 0; pawns <= 16; pawns += 4 {
			for queens := 0; queens <= 2; queens++ {
				pc := PieceCounts{WhitePawn: pawns, WhiteQueen: queens, BlackRook: 2}
				got := PositionComplexity(pc)
				if got < 0 || got > 1 {
					t.Errorf("complexity %v out of range for %v", got, pc)
				}
			}
		}
	})
}
