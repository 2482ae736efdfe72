package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/freeeve/chesslevels/internal/analysis"
	"github.com/freeeve/chesslevels/internal/eco"
	"github.com/freeeve/chesslevels/internal/knowledge"
	"github.com/freeeve/chesslevels/internal/levels"
	"github.com/freeeve/chesslevels/internal/logx"
)

func main() {
	defaultOutputDir := "chess_levels"
	if envDir := os.Getenv("CHESSLEVELS_OUTPUT_DIR"); envDir != "" {
		defaultOutputDir = envDir
	}

	var (
		inputPath = flag.String("input", "", "Path to knowledge JSON file (supports .zst)")
		outputDir = flag.String("output-dir", defaultOutputDir, "Output directory for difficulty levels")
		compress  = flag.Bool("compress", false, "Write zstd-compressed output files")
		ecoDir    = flag.String("eco-dir", "", "Directory of ECO .tsv files for opening names (optional)")
		logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: split --input <knowledge.json[.zst]> [options]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := logx.NewLogger(*logLevel)
	logger.Info().
		Str("input", *inputPath).
		Str("output_dir", *outputDir).
		Bool("compress", *compress).
		Msg("starting split")

	startTime := time.Now()

	doc, err := knowledge.Load(*inputPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load knowledge file")
	}
	logger.Info().Int("total_moves", doc.MoveTree.Root.CountMoves()).Msg("knowledge file loaded")

	var ecoDB *eco.Database
	if *ecoDir != "" {
		ecoDB = eco.NewDatabase()
		if err := ecoDB.LoadDir(*ecoDir); err != nil {
			logger.Fatal().Err(err).Msg("load ECO database")
		}
		logger.Info().Int("openings", ecoDB.Count()).Msg("ECO database loaded")
	}

	// Score every move with position and game-phase analysis.
	moves := analysis.Walk(doc.MoveTree.Root)
	logger.Info().Int("moves", len(moves)).Msg("analyzed move difficulty")

	openings := levels.CommonOpenings(moves, 20)
	if ecoDB != nil {
		for i := range openings {
			if o := ecoDB.Lookup(openings[i].Sequence); o != nil {
				openings[i].Name = o.Name
			}
		}
	}
	logger.Info().Int("sequences", len(openings)).Msg("mined common opening sequences")
	for i, o := range openings {
		if i >= 5 {
			break
		}
		logger.Info().
			Int("rank", i+1).
			Str("sequence", o.Sequence).
			Str("name", o.Name).
			Int("count", o.Count).
			Msg("common opening")
	}

	tiers := levels.Stratify(moves)

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		logger.Fatal().Err(err).Str("dir", *outputDir).Msg("create output directory")
	}

	var counts [levels.NumLevels]int
	for level, tierMoves := range tiers {
		counts[level] = len(tierMoves)
		name := levels.LevelNames[level]
		if len(tierMoves) == 0 {
			logger.Warn().Int("level", level+1).Str("name", name).Msg("no moves for level, skipping")
			continue
		}

		levelDoc := levels.BuildLevelDocument(level, tierMoves, doc)
		path := filepath.Join(*outputDir, fmt.Sprintf("chess_knowledge_level_%d_%s.json", level+1, name))
		written, err := knowledge.WriteJSON(path, levelDoc, *compress)
		if err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("write level file")
		}

		info := levelDoc.DifficultyLevel
		logger.Info().
			Str("file", written).
			Str("name", name).
			Int("moves", info.MoveCount).
			Str("elo_range", fmt.Sprintf("%d-%d", info.ApproximateELORange[0], info.ApproximateELORange[1])).
			Float64("avg_complexity", info.AverageComplexity).
			Float64("min_difficulty", info.MinDifficulty).
			Float64("max_difficulty", info.MaxDifficulty).
			Msg("saved level")
	}

	topOpenings := openings
	if len(topOpenings) > 10 {
		topOpenings = topOpenings[:10]
	}
	summary := levels.Summary{
		TotalMoves:     len(moves),
		LevelCounts:    counts,
		CommonOpenings: topOpenings,
		Timestamp:      doc.Timestamp,
		Version:        doc.Version,
	}
	summaryPath := filepath.Join(*outputDir, "difficulty_summary.json")
	if _, err := knowledge.WriteJSON(summaryPath, summary, *compress); err != nil {
		logger.Fatal().Err(err).Str("path", summaryPath).Msg("write summary")
	}

	logger.Info().
		Str("output_dir", *outputDir).
		Int("total_moves", len(moves)).
		Dur("elapsed", time.Since(startTime)).
		Msg("split complete")
}
