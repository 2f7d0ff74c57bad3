package experiments

import (
	"catmouse/engine"
	"catmouse/experiments/metrics"
	"catmouse/game"
	"catmouse/meta"
	"catmouse/searcher"
	"catmouse/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Config struct {
	Name       string
	Rows       int
	Cols       int
	Depth      int // Zero scores the pursuer's candidate moves directly
	Goroutines int
	Games      int
	MaxTurns   int
	Seed       uint64
	OutDir     string // No records are written when empty
}

type Summary struct {
	Config
	Captured   int
	Escaped    int
	Unfinished int
	TotalMoves int
	CacheSize  int
	Dir        string
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = "games"
	}
	if c.Rows <= 0 {
		c.Rows = meta.ROWS
	}
	if c.Cols <= 0 {
		c.Cols = meta.COLS
	}
	if c.Goroutines <= 0 {
		c.Goroutines = 1
	}
	if c.Games <= 0 {
		c.Games = meta.GAMES
	}
	if c.MaxTurns <= 0 {
		c.MaxTurns = meta.MAX_TURNS
	}
	return c
}

// Run plays cfg.Games games of a random evader against a minimax pursuer.
// All games share one evaluation cache.
func Run(cfg Config) (Summary, error) {
	cfg = cfg.withDefaults()
	rng := rand.New(rand.NewSource(cfg.Seed))
	cache := searcher.NewEvaluationCache()
	summary := Summary{Config: cfg}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment with %d games on a %dx%d grid at depth %d...", cfg.Name, cfg.Games, cfg.Rows, cfg.Cols, cfg.Depth)

	for i := 0; i < cfg.Games; i++ {
		board, err := game.NewBoard(cfg.Rows, cfg.Cols, rng)
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}
		pursuer := searcher.NewMinimax(
			searcher.WithDepth(cfg.Depth),
			searcher.WithGoroutines(cfg.Goroutines),
			searcher.WithCache(cache),
			searcher.WithMetrics(),
		)
		e := engine.LocalEngine(board, agent.NewRandomAgent(rng), agent.NewPursuerAgent(pursuer), cfg.MaxTurns)

		gameMetric, moveMetrics, err := e.Run()
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		switch gameMetric.Outcome {
		case game.EvaderCaptured:
			summary.Captured++
		case game.EvaderEscaped:
			summary.Escaped++
		default:
			summary.Unfinished++
		}
		summary.TotalMoves += gameMetric.TotalMoves

		gameRecords = append(gameRecords, metrics.GameRecord{GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       gameMetric.ID,
				MoveMetric: mm,
			})
		}

		log.Debug().Msgf("completed game %d of %d: %s after %d moves", i+1, cfg.Games, gameMetric.Outcome, gameMetric.TotalMoves)
	}
	summary.CacheSize = cache.Len()

	log.Info().Msgf("completed %s experiment: %d captured, %d escaped, %d unfinished", cfg.Name, summary.Captured, summary.Escaped, summary.Unfinished)

	if cfg.OutDir == "" {
		return summary, nil
	}

	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return summary, err
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return summary, err
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

// RunDepthSweep repeats the same experiment at each search depth. Every run
// starts from cfg.Seed, so the exits match across depths.
func RunDepthSweep(cfg Config, depths []int) ([]Summary, error) {
	summaries := make([]Summary, 0, len(depths))
	for _, depth := range depths {
		run := cfg
		run.Depth = depth
		run.Name = fmt.Sprintf("%s_depth_%d", cfg.withDefaults().Name, depth)
		summary, err := Run(run)
		if err != nil {
			return summaries, fmt.Errorf("depth %d: %w", depth, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
