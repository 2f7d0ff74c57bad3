package agent

import (
	"catmouse/experiments/metrics"
	"catmouse/game"
	"fmt"
)

type randomAgent struct {
	rng game.Rand
}

// NewRandomAgent returns an agent that moves the evader to a uniformly random
// neighbouring cell.
func NewRandomAgent(rng game.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(board game.Board) (game.Position, metrics.SearchMetric, error) {
	move, err := RandomMove(board, a.rng)
	return move, metrics.SearchMetric{}, err
}

// RandomMove picks one of the evader's legal steps uniformly at random.
func RandomMove(board game.Board, rng game.Rand) (game.Position, error) {
	if err := board.Validate(); err != nil {
		return game.Position{}, fmt.Errorf("cannot move evader: %w", err)
	}
	moves := board.EvaderMoves()
	if len(moves) == 0 {
		return game.Position{}, fmt.Errorf("evader at %v: %w", board.Evader, game.ErrNoLegalMoves)
	}
	return moves[rng.Intn(len(moves))], nil
}
