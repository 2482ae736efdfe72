package levels

import (
	"encoding/json"
	"fmt"

	"github.com/freeeve/chesslevels/internal/analysis"
	"github.com/freeeve/chesslevels/internal/knowledge"
)

// LevelNames in ascending difficulty order.
var LevelNames = [NumLevels]string{
	"Beginner",
	"Novice",
	"Intermediate",
	"Advanced",
	"Expert",
	"Master",
	"Grandmaster",
	"World_Champion",
}

// ELORanges gives the approximate rating band for each level.
var ELORanges = [NumLevels][2]int{
	{800, 1000},
	{1000, 1200},
	{1200, 1400},
	{1400, 1600},
	{1600, 1900},
	{1900, 2200},
	{2200, 2500},
	{2500, 2800},
}

// TreeStats is the stats block every knowledge document carries. For a
// rebuilt level tree only the move count is meaningful; the rest is
// zeroed for format compatibility.
type TreeStats struct {
	WhiteWins             int      `json:"whiteWins"`
	BlackWins             int      `json:"blackWins"`
	Draws                 int      `json:"draws"`
	Discoveries           []string `json:"discoveries"`
	UniqueMoves           int      `json:"uniqueMoves"`
	UniquePositions       int      `json:"uniquePositions"`
	ExplorationMilestones []string `json:"explorationMilestones"`
}

// LevelInfo is the difficulty metadata attached to each level document.
type LevelInfo struct {
	Name                string             `json:"name"`
	Level               int                `json:"level"`
	MoveCount           int                `json:"move_count"`
	AverageRating       float64            `json:"average_rating"`
	MinDifficulty       float64            `json:"min_difficulty"`
	MaxDifficulty       float64            `json:"max_difficulty"`
	ApproximateELORange [2]int             `json:"approximate_elo_range"`
	PhaseDistribution   map[string]float64 `json:"phase_distribution"`
	AverageComplexity   float64            `json:"average_complexity"`
	Description         string             `json:"description"`
}

// LevelDocument is the output file for one difficulty level.
type LevelDocument struct {
	Version         json.RawMessage    `json:"version"`
	Timestamp       json.RawMessage    `json:"timestamp"`
	MoveTree        knowledge.MoveTree `json:"moveTree"`
	Stats           TreeStats          `json:"stats"`
	DifficultyLevel LevelInfo          `json:"difficulty_level"`
}

// Summary is the run-level overview written next to the level files.
type Summary struct {
	TotalMoves     int             `json:"total_moves"`
	LevelCounts    [NumLevels]int  `json:"level_counts"`
	CommonOpenings []OpeningCount  `json:"common_openings"`
	Timestamp      json.RawMessage `json:"timestamp"`
	Version        json.RawMessage `json:"version"`
}

// BuildLevelDocument assembles the output document for one level:
// the rebuilt minimal tree plus aggregate statistics over the level's
// moves. level is zero-based; moves must be non-empty.
func BuildLevelDocument(level int, moves []analysis.ScoredMove, src *knowledge.Document) LevelDocument {
	phaseCounts := map[string]int{
		analysis.PhaseOpening:    0,
		analysis.PhaseMiddlegame: 0,
		analysis.PhaseEndgame:    0,
		analysis.PhaseUnknown:    0,
	}
	var ratingSum, complexitySum float64
	minDifficulty, maxDifficulty := moves[0].Difficulty, moves[0].Difficulty
	for _, m := range moves {
		phaseCounts[m.GamePhase]++
		ratingSum += m.Rating
		complexitySum += m.Complexity
		if m.Difficulty < minDifficulty {
			minDifficulty = m.Difficulty
		}
		if m.Difficulty > maxDifficulty {
			maxDifficulty = m.Difficulty
		}
	}

	phaseDistribution := make(map[string]float64, len(phaseCounts))
	for phase, count := range phaseCounts {
		phaseDistribution[phase] = float64(count) / float64(len(moves))
	}

	name := LevelNames[level]
	eloRange := ELORanges[level]
	return LevelDocument{
		Version:   src.Version,
		Timestamp: src.Timestamp,
		MoveTree:  knowledge.MoveTree{Root: BuildLevelTree(moves)},
		Stats: TreeStats{
			Discoveries:           []string{},
			UniqueMoves:           len(moves),
			ExplorationMilestones: []string{},
		},
		DifficultyLevel: LevelInfo{
			Name:                name,
			Level:               level + 1,
			MoveCount:           len(moves),
			AverageRating:       ratingSum / float64(len(moves)),
			MinDifficulty:       minDifficulty,
			MaxDifficulty:       maxDifficulty,
			ApproximateELORange: eloRange,
			PhaseDistribution:   phaseDistribution,
			AverageComplexity:   complexitySum / float64(len(moves)),
			Description:         LevelDescription(name, eloRange),
		},
	}
}

// LevelDescription returns the study-guide blurb for a level.
func LevelDescription(name string, eloRange [2]int) string {
	lo, hi := eloRange[0], eloRange[1]
	switch name {
	case "Beginner":
		return fmt.Sprintf("Basic chess moves and simple tactics for players rated %d-%d. "+
			"Focuses on avoiding blunders and understanding piece movement.", lo, hi)
	case "Novice":
		return fmt.Sprintf("Fundamental principles and common patterns for players rated %d-%d. "+
			"Introduces basic opening principles and simple tactical motifs.", lo, hi)
	case "Intermediate":
		return fmt.Sprintf("Standard tactics and positional concepts for players rated %d-%d. "+
			"Includes common opening lines and basic endgame techniques.", lo, hi)
	case "Advanced":
		return fmt.Sprintf("More sophisticated tactical and strategic ideas for players rated %d-%d. "+
			"Features deeper opening preparation and more complex middlegame positions.", lo, hi)
	case "Expert":
		return fmt.Sprintf("Advanced positional understanding and calculation for players rated %d-%d. "+
			"Includes complex sacrifices and long-term strategic planning.", lo, hi)
	case "Master":
		return fmt.Sprintf("Master-level concepts and deep calculation for players rated %d-%d. "+
			"Features sophisticated opening theory and technical endgame precision.", lo, hi)
	case "Grandmaster":
		return fmt.Sprintf("Grandmaster-level strategy and subtle positional nuances for players rated %d-%d. "+
			"Includes critical theoretical variations and complex evaluations.", lo, hi)
	case "World_Champion":
		return fmt.Sprintf("Elite chess understanding at the highest level for players rated %d-%d. "+
			"Features cutting-edge theory and profound strategic concepts used by world champions.", lo, hi)
	}
	return fmt.Sprintf("Chess knowledge for %s level players.", name)
}
