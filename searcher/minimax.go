package searcher

import (
	"catmouse/experiments/metrics"
	"catmouse/game"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax searches a fixed number of plies with the pursuer maximizing and
// the evader minimizing the cached distance score. There is no pruning, so
// every node of the tree is visited. A Minimax serves one game at a time; its
// cache may be shared.
type Minimax struct {
	depth      int
	goroutines int
	cache      *EvaluationCache
	metrics    metrics.Collector
}

// WithDepth sets the plies searched below each candidate move. Zero scores
// the candidates directly.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines scores the root moves in parallel.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithCache(cache *EvaluationCache) Option {
	return func(m *Minimax) {
		if cache != nil {
			m.cache = cache
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      DefaultDepth,
		goroutines: 1,
		cache:      NewEvaluationCache(),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Cache() *EvaluationCache {
	return m.cache
}

// FindMove returns the pursuer's best step. Ties go to the move enumerated
// first (up, down, left, right).
func (m *Minimax) FindMove(board game.Board) (game.Position, metrics.SearchMetric, error) {
	if err := board.Validate(); err != nil {
		return game.Position{}, metrics.SearchMetric{}, fmt.Errorf("cannot search board: %w", err)
	}
	moves := board.PursuerMoves()
	if len(moves) == 0 {
		return game.Position{}, metrics.SearchMetric{}, fmt.Errorf("pursuer at %v: %w", board.Pursuer, game.ErrNoLegalMoves)
	}

	m.metrics.Start(m.goroutines, m.depth)
	values := m.scoreMoves(board, moves)

	best := 0
	bestValue := math.MinInt
	for i, value := range values {
		if value > bestValue {
			best = i
			bestValue = value
		}
	}
	metric := m.metrics.Complete(m.cache.Len())

	log.Debug().Msgf("pursuer %v -> %v (value %d of %v)", board.Pursuer, moves[best], bestValue, values)
	return moves[best], metric, nil
}

// scoreMoves returns the minimax value of each candidate, indexed like moves.
func (m *Minimax) scoreMoves(board game.Board, moves []game.Position) []int {
	values := make([]int, len(moves))
	if m.goroutines <= 1 || len(moves) == 1 {
		for i, move := range moves {
			values[i] = m.minimax(board.WithPursuer(move), m.depth, false)
		}
		return values
	}

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(m.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				values[idx] = m.minimax(board.WithPursuer(moves[idx]), m.depth, false)
			}
		}()
	}

	wg.Wait()
	return values
}

func (m *Minimax) minimax(board game.Board, depth int, maximizing bool) int {
	m.metrics.AddNode()
	if depth == 0 || board.Status().IsTerminal() {
		score, hit := m.cache.lookup(board.Key())
		m.metrics.AddEvaluation(hit)
		return score
	}

	if maximizing {
		value := math.MinInt
		for _, move := range board.PursuerMoves() {
			value = max(value, m.minimax(board.WithPursuer(move), depth-1, false))
		}
		return value
	}

	value := math.MaxInt
	for _, move := range board.EvaderMoves() {
		value = min(value, m.minimax(board.WithEvader(move), depth-1, true))
	}
	return value
}
