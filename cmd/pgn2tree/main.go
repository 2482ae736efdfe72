package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/freeeve/pgn/v3"

	"github.com/freeeve/chesslevels/internal/knowledge"
	"github.com/freeeve/chesslevels/internal/logx"
)

func main() {
	defaultRatingMin := 0
	if envRating := os.Getenv("CHESSLEVELS_RATING_MIN"); envRating != "" {
		if rating, err := strconv.Atoi(envRating); err == nil {
			defaultRatingMin = rating
		}
	}

	var (
		inputPath  = flag.String("pgn", "", "Path to PGN file (supports .zst)")
		outputPath = flag.String("output", "chess_knowledge.json", "Output knowledge file")
		ratingMin  = flag.Int("rating-min", defaultRatingMin, "Rating floor for games (0 = no filter)")
		maxGames   = flag.Int("max-games", 0, "Maximum games to process (0 = unlimited)")
		maxDepth   = flag.Int("max-depth", 40, "Maximum plies to record per game (0 = unlimited)")
		compress   = flag.Bool("compress", false, "Write zstd-compressed output")
		logLevel   = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: pgn2tree --pgn <file.pgn[.zst]> [options]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := logx.NewLogger(*logLevel)
	logger.Info().
		Str("pgn", *inputPath).
		Str("output", *outputPath).
		Int("rating_min", *ratingMin).
		Int("max_depth", *maxDepth).
		Msg("starting pgn2tree")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := knowledge.NewRoot()

	var gamesProcessed, gamesSkipped, movesRecorded int64
	startTime := time.Now()
	lastLog := time.Now()

	// Parse PGN file (handles .zst automatically)
	parser := pgn.Games(*inputPath)

	stopped := false
gameLoop:
	for game := range parser.Games {
		// Check for interruption (non-blocking)
		select {
		case <-ctx.Done():
			if !stopped {
				logger.Info().Msg("interrupted, stopping parser...")
				parser.Stop()
				stopped = true
			}
			break gameLoop
		default:
		}

		if *maxGames > 0 && gamesProcessed >= int64(*maxGames) {
			logger.Info().Int64("games", gamesProcessed).Msg("reached max games limit")
			parser.Stop()
			break gameLoop
		}

		whiteRating := parseRating(game.Tags["WhiteElo"])
		blackRating := parseRating(game.Tags["BlackElo"])
		if whiteRating < *ratingMin || blackRating < *ratingMin {
			gamesSkipped++
			continue
		}

		var isWin, isDraw, isLoss bool
		switch game.Tags["Result"] {
		case "1-0":
			isWin = true
		case "0-1":
			isLoss = true
		case "1/2-1/2":
			isDraw = true
		default:
			gamesSkipped++
			continue // Unknown result
		}

		moves := recordGame(root, game, *maxDepth, whiteRating, blackRating, isWin, isDraw, isLoss)
		movesRecorded += int64(moves)
		gamesProcessed++

		if time.Since(lastLog) > 10*time.Second {
			elapsed := time.Since(startTime)
			logger.Info().
				Int64("games", gamesProcessed).
				Int64("skipped", gamesSkipped).
				Int64("moves", movesRecorded).
				Float64("games_per_sec", float64(gamesProcessed)/elapsed.Seconds()).
				Msg("pgn2tree progress")
			lastLog = time.Now()
		}
	}

	if err := parser.Err(); err != nil {
		logger.Fatal().Err(err).Msg("parser error")
	}

	doc := knowledge.Document{
		Version:   json.RawMessage(`"2.0"`),
		Timestamp: json.RawMessage(strconv.FormatInt(time.Now().Unix(), 10)),
		MoveTree:  knowledge.MoveTree{Root: root},
	}
	written, err := knowledge.WriteJSON(*outputPath, doc, *compress)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *outputPath).Msg("write knowledge file")
	}

	logger.Info().
		Str("file", written).
		Int64("games_processed", gamesProcessed).
		Int64("games_skipped", gamesSkipped).
		Int("tree_moves", root.CountMoves()).
		Dur("elapsed", time.Since(startTime)).
		Msg("pgn2tree complete")
}

// recordGame replays one game into the tree and returns the number of
// plies recorded. Win/loss counts are stored from the mover's
// perspective, and each move's rating tracks the running average of the
// players who chose it.
func recordGame(root *knowledge.Node, game *pgn.Game, maxDepth, whiteRating, blackRating int, isWin, isDraw, isLoss bool) int {
	pos := pgn.NewStartingPosition()
	cur := root
	depth := 0

	for _, mv := range game.Moves {
		if maxDepth > 0 && depth >= maxDepth {
			break
		}
		san := mv.String()

		child, ok := cur.Moves[san]
		if !ok {
			child = &knowledge.Node{Moves: map[string]*knowledge.Node{}, Stats: &knowledge.Stats{}}
			cur.Moves[san] = child
		}
		if child.Stats == nil {
			child.Stats = &knowledge.Stats{}
		}
		st := child.Stats
		st.TimesPlayed++

		// Mover's perspective: on white's move a 1-0 result is a win.
		whiteToMove := depth%2 == 0
		moverRating := whiteRating
		if !whiteToMove {
			moverRating = blackRating
		}
		switch {
		case (whiteToMove && isWin) || (!whiteToMove && isLoss):
			st.Wins++
		case isDraw:
			st.Draws++
		case (whiteToMove && isLoss) || (!whiteToMove && isWin):
			st.Losses++
		}

		// Running average rating over all games that played this move.
		if st.Rating == nil {
			r := float64(moverRating)
			st.Rating = &r
		} else {
			*st.Rating += (float64(moverRating) - *st.Rating) / float64(st.TimesPlayed)
		}

		if tag := moveTypeTag(san); tag != "" {
			st.Type = tag
		}

		if err := pgn.ApplyMove(pos, mv); err != nil {
			break
		}
		if child.Position == "" {
			child.Position = pos.ToFEN()
		}

		cur = child
		depth++
	}

	return depth
}

// moveTypeTag derives a capture/check tag from SAN notation.
func moveTypeTag(san string) string {
	var tags []string
	if strings.Contains(san, "x") {
		tags = append(tags, "capture")
	}
	if strings.HasSuffix(san, "+") {
		tags = append(tags, "check")
	}
	if strings.HasSuffix(san, "#") {
		tags = append(tags, "checkmate")
	}
	return strings.Join(tags, ",")
}

func parseRating(s string) int {
	if s == "" || s == "?" || s == "-" {
		return 0
	}
	r, _ := strconv.Atoi(s)
	return r
}
