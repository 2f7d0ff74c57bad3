package engine

import (
	"catmouse/experiments/metrics"
	"catmouse/game"
	"catmouse/searcher"
	"catmouse/searcher/agent"
	"catmouse/utils"
	"fmt"
)

// ApplyEvaderTurn moves the evader to a random neighbouring cell.
func ApplyEvaderTurn(board game.Board, rng game.Rand) (game.Board, error) {
	next, _, err := playTurn(board, Evader, agent.NewRandomAgent(rng))
	return next, err
}

// ApplyPursuerTurn moves the pursuer to the cell chosen by s.
func ApplyPursuerTurn(board game.Board, s searcher.Searcher) (game.Board, metrics.SearchMetric, error) {
	return playTurn(board, Pursuer, agent.NewPursuerAgent(s))
}

func playTurn(board game.Board, mover string, a agent.Agent) (game.Board, metrics.SearchMetric, error) {
	if outcome := board.Status(); outcome.IsTerminal() {
		return board, metrics.SearchMetric{}, fmt.Errorf("evader %s: %w", outcome, game.ErrGameOver)
	}
	move, metric, err := a.FindMove(board)
	if err != nil {
		return board, metric, err
	}
	next, err := applyMove(board, mover, move)
	return next, metric, err
}

// applyMove checks that move is one legal step for mover and returns the
// resulting board.
func applyMove(board game.Board, mover string, move game.Position) (game.Board, error) {
	from := board.Evader
	if mover == Pursuer {
		from = board.Pursuer
	}
	if !utils.Contains(game.LegalMoves(board.Rows, board.Cols, from), move) {
		return board, fmt.Errorf("%s %v -> %v: %w", mover, from, move, game.ErrIllegalMove)
	}
	if mover == Pursuer {
		return board.WithPursuer(move), nil
	}
	return board.WithEvader(move), nil
}
