package engine

import (
	"catmouse/experiments/metrics"
	"catmouse/game"
	"catmouse/searcher/agent"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var _ Runner = (*Engine)(nil)

type Engine struct {
	Board    game.Board
	Evader   agent.Agent
	Pursuer  agent.Agent
	MaxTurns int
	// OnMove, when set, is called after every ply with the new board
	OnMove func(board game.Board, move metrics.MoveMetric)
}

// LocalEngine sets up a game where the evader moves first and the two agents
// then alternate.
func LocalEngine(board game.Board, evader, pursuer agent.Agent, maxTurns int) *Engine {
	if evader == nil || pursuer == nil {
		panic("need an evader and a pursuer agent")
	}
	if maxTurns < 1 {
		panic("need at least one turn")
	}
	return &Engine{
		Board:    board,
		Evader:   evader,
		Pursuer:  pursuer,
		MaxTurns: maxTurns,
	}
}

// Run executes the game loop until the game ends or MaxTurns plies are played.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	if err := e.Board.Validate(); err != nil {
		return metrics.GameMetric{}, nil, fmt.Errorf("cannot start game: %w", err)
	}

	gameMetric := metrics.GameMetric{
		ID:        uuid.NewString(),
		Rows:      e.Board.Rows,
		Cols:      e.Board.Cols,
		Exit:      e.Board.Exit,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("game %s: evader at %v, pursuer at %v, exit at %v", gameMetric.ID, e.Board.Evader, e.Board.Pursuer, e.Board.Exit)

	mover, current := Evader, e.Evader
	turnCount := 1
	for !e.Board.Status().IsTerminal() && turnCount <= e.MaxTurns {
		from := e.Board.Evader
		if mover == Pursuer {
			from = e.Board.Pursuer
		}

		next, searchMetric, err := playTurn(e.Board, mover, current)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turnCount, err)
		}
		e.Board = next

		moveMetric := metrics.MoveMetric{
			Step:         turnCount,
			Mover:        mover,
			From:         from,
			To:           next.Evader,
			SearchMetric: searchMetric,
		}
		if mover == Pursuer {
			moveMetric.To = next.Pursuer
		}
		moveMetrics = append(moveMetrics, moveMetric)
		if e.OnMove != nil {
			e.OnMove(e.Board, moveMetric)
		}

		if mover == Evader {
			mover, current = Pursuer, e.Pursuer
		} else {
			mover, current = Evader, e.Evader
		}
		turnCount++
	}

	gameMetric.Outcome = e.Board.Status()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	switch gameMetric.Outcome {
	case game.EvaderEscaped:
		log.Debug().Msgf("game %s: the mouse escaped after %d moves", gameMetric.ID, gameMetric.TotalMoves)
	case game.EvaderCaptured:
		log.Debug().Msgf("game %s: the cat caught the mouse after %d moves", gameMetric.ID, gameMetric.TotalMoves)
	default:
		log.Debug().Msgf("game %s: stopped after %d turns (no winner yet)", gameMetric.ID, e.MaxTurns)
	}

	return gameMetric, moveMetrics, nil
}
