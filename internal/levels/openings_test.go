package levels

import (
	"reflect"
	"testing"

	"github.com/freeeve/chesslevels/internal/analysis"
)

func openingMove(sequence []string, depth int, phase string) analysis.ScoredMove {
	return analysis.ScoredMove{
		Move:         sequence[len(sequence)-1],
		MoveSequence: sequence,
		Depth:        depth,
		GamePhase:    phase,
	}
}

func TestCommonOpenings_FiltersAndCounts(t *testing.T) {
	moves := []analysis.ScoredMove{
		openingMove([]string{"e4"}, 0, analysis.PhaseOpening),
		openingMove([]string{"e4"}, 0, analysis.PhaseOpening),
		openingMove([]string{"e4", "e5"}, 1, analysis.PhaseOpening),
		// Too deep: ignored even in opening phase.
		openingMove([]string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Ba4", "Nf6", "O-O", "Be7", "Re1"}, 10, analysis.PhaseOpening),
		// Wrong phase: ignored even when shallow.
		openingMove([]string{"Kd2"}, 3, analysis.PhaseEndgame),
		openingMove([]string{"Re8"}, 4, analysis.PhaseMiddlegame),
	}

	got := CommonOpenings(moves, 20)
	want := []OpeningCount{
		{Sequence: "e4", Count: 2},
		{Sequence: "e4 e5", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CommonOpenings = %v, want %v", got, want)
	}
}

func TestCommonOpenings_TopNAndTies(t *testing.T) {
	var moves []analysis.ScoredMove
	for _, seq := range []string{"c4", "a3", "b3"} {
		moves = append(moves, openingMove([]string{seq}, 0, analysis.PhaseOpening))
	}
	for i := 0; i < 3; i++ {
		moves = append(moves, openingMove([]string{"d4"}, 0, analysis.PhaseOpening))
	}

	got := CommonOpenings(moves, 3)
	// d4 leads on count; the three singletons tie and resolve
	// alphabetically, so only a3 and b3 make the cut.
	want := []OpeningCount{
		{Sequence: "d4", Count: 3},
		{Sequence: "a3", Count: 1},
		{Sequence: "b3", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CommonOpenings = %v, want %v", got, want)
	}
}

func TestCommonOpenings_Empty(t *testing.T) {
	if got := CommonOpenings(nil, 20); len(got) != 0 {
		t.Errorf("got %v from empty population, want none", got)
	}
}
