package experiments

import (
	"catmouse/game"
	"catmouse/searcher"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Goroutines int
	Searches   int
	Nodes      int
	Duration   time.Duration
}

// RunThroughputExperiment searches every ongoing board of a rows x cols grid
// with a fixed exit, once per goroutine count. Each count starts from an
// empty cache.
func RunThroughputExperiment(rows, cols, depth int, exit game.Position, goroutines []int) ([]Throughput, error) {
	results := make([]Throughput, 0, len(goroutines))

	log.Info().Msg("starting throughput experiment...")

	for _, g := range goroutines {
		m := searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithGoroutines(g), searcher.WithMetrics())
		result := Throughput{Goroutines: g}
		start := time.Now()

		for pursuer := range cells(rows, cols) {
			for evader := range cells(rows, cols) {
				board, err := game.NewBoardAt(rows, cols, pursuer, evader, exit)
				if err != nil {
					return results, fmt.Errorf("throughput with %d goroutines: %w", g, err)
				}
				if board.Status().IsTerminal() {
					continue
				}
				_, metric, err := m.FindMove(board)
				if err != nil {
					return results, fmt.Errorf("throughput with %d goroutines: %w", g, err)
				}
				result.Searches++
				result.Nodes += metric.Nodes
			}
		}
		result.Duration = time.Since(start)
		results = append(results, result)

		log.Info().Msgf("%d goroutines: %d searches, %d nodes in %s", g, result.Searches, result.Nodes, result.Duration)
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}

func cells(rows, cols int) func(yield func(game.Position) bool) {
	return func(yield func(game.Position) bool) {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !yield(game.Position{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}
