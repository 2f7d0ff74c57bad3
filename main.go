package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"catmouse/engine"
	"catmouse/experiments"
	"catmouse/experiments/metrics"
	"catmouse/game"
	"catmouse/meta"
	"catmouse/searcher"
	"catmouse/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/exp/rand"
)

func main() {
	cmd := &cli.Command{
		Name:  "catmouse",
		Usage: "a minimax cat chases a random mouse to the exit",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(cmd.Bool("debug"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			playCommand(),
			experimentCommand(),
			throughputCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("catmouse failed")
	}
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func gridFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "rows", Value: meta.ROWS, Usage: "grid rows"},
		&cli.IntFlag{Name: "cols", Value: meta.COLS, Usage: "grid columns"},
		&cli.IntFlag{Name: "depth", Value: meta.DEPTH, Usage: "plies searched below each pursuer move"},
		&cli.IntFlag{Name: "goroutines", Value: 1, Usage: "goroutines scoring the pursuer's moves"},
		&cli.IntFlag{Name: "seed", Usage: "random seed (0 picks one from the clock)"},
		&cli.IntFlag{Name: "max-turns", Value: meta.MAX_TURNS, Usage: "plies before a game is abandoned"},
	}
}

func seed(cmd *cli.Command) uint64 {
	if s := cmd.Int("seed"); s != 0 {
		return uint64(s)
	}
	return uint64(time.Now().UnixNano())
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play one game and draw the board after every move",
		Flags: append(gridFlags(),
			&cli.DurationFlag{Name: "delay", Value: time.Second, Usage: "pause between moves"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rng := rand.New(rand.NewSource(seed(cmd)))
			board, err := game.NewBoard(int(cmd.Int("rows")), int(cmd.Int("cols")), rng)
			if err != nil {
				return err
			}
			pursuer := searcher.NewMinimax(
				searcher.WithDepth(int(cmd.Int("depth"))),
				searcher.WithGoroutines(int(cmd.Int("goroutines"))),
				searcher.WithMetrics(),
			)
			e := engine.LocalEngine(board, agent.NewRandomAgent(rng), agent.NewPursuerAgent(pursuer), int(cmd.Int("max-turns")))

			delay := cmd.Duration("delay")
			fmt.Print(board)
			e.OnMove = func(board game.Board, move metrics.MoveMetric) {
				fmt.Printf("\n%d. %s %v -> %v\n%s", move.Step, move.Mover, move.From, move.To, board)
				time.Sleep(delay)
			}

			gameMetric, _, err := e.Run()
			if err != nil {
				return err
			}
			switch gameMetric.Outcome {
			case game.EvaderEscaped:
				log.Info().Msgf("game over: the mouse escaped after %d moves", gameMetric.TotalMoves)
			case game.EvaderCaptured:
				log.Info().Msgf("game over: the cat caught the mouse after %d moves", gameMetric.TotalMoves)
			default:
				log.Info().Msgf("stopped after %d moves (no winner yet)", gameMetric.TotalMoves)
			}
			return nil
		},
	}
}

func experimentCommand() *cli.Command {
	return &cli.Command{
		Name:  "experiment",
		Usage: "play many games and write CSV records",
		Flags: append(gridFlags(),
			&cli.IntFlag{Name: "games", Value: meta.GAMES, Usage: "games to play"},
			&cli.StringFlag{Name: "out", Value: "experiments", Usage: "output directory (empty disables records)"},
			&cli.BoolFlag{Name: "sweep", Usage: "repeat for every depth from 0 to --depth"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := experiments.Config{
				Name:       "games",
				Rows:       int(cmd.Int("rows")),
				Cols:       int(cmd.Int("cols")),
				Depth:      int(cmd.Int("depth")),
				Goroutines: int(cmd.Int("goroutines")),
				Games:      int(cmd.Int("games")),
				MaxTurns:   int(cmd.Int("max-turns")),
				Seed:       seed(cmd),
				OutDir:     cmd.String("out"),
			}

			if !cmd.Bool("sweep") {
				summary, err := experiments.Run(cfg)
				if err != nil {
					return err
				}
				printSummary(summary)
				return nil
			}

			depths := []int{}
			for d := 0; d <= cfg.Depth; d++ {
				depths = append(depths, d)
			}
			summaries, err := experiments.RunDepthSweep(cfg, depths)
			if err != nil {
				return err
			}
			for _, summary := range summaries {
				printSummary(summary)
			}
			return nil
		},
	}
}

func printSummary(s experiments.Summary) {
	fmt.Printf("%s: depth=%d games=%d captured=%d escaped=%d unfinished=%d moves=%d cache=%d",
		s.Name, s.Depth, s.Games, s.Captured, s.Escaped, s.Unfinished, s.TotalMoves, s.CacheSize)
	if s.Dir != "" {
		fmt.Printf(" records=%s", s.Dir)
	}
	fmt.Println()
}

func throughputCommand() *cli.Command {
	return &cli.Command{
		Name:  "throughput",
		Usage: "time full-grid searches at increasing goroutine counts",
		Flags: append(gridFlags(),
			&cli.IntFlag{Name: "max-goroutines", Value: 4, Usage: "largest goroutine count (doubling from 1)"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rows, cols := int(cmd.Int("rows")), int(cmd.Int("cols"))
			goroutines := []int{}
			for g := 1; g <= int(cmd.Int("max-goroutines")); g *= 2 {
				goroutines = append(goroutines, g)
			}
			exit := game.Position{Row: rows - 1, Col: 0}

			results, err := experiments.RunThroughputExperiment(rows, cols, int(cmd.Int("depth")), exit, goroutines)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Printf("goroutines=%d searches=%d nodes=%d duration=%s\n", r.Goroutines, r.Searches, r.Nodes, r.Duration)
			}
			return nil
		},
	}
}
