package engine

import (
	"catmouse/experiments/metrics"
	"catmouse/game"
)

type scriptedAgent struct {
	moves []game.Position
	err   error
}

func (s *scriptedAgent) FindMove(board game.Board) (game.Position, metrics.SearchMetric, error) {
	if s.err != nil {
		return game.Position{}, metrics.SearchMetric{}, s.err
	}
	move := s.moves[0]
	s.moves = s.moves[1:]
	return move, metrics.SearchMetric{}, nil
}

type fixedRand struct {
	value int
}

func (f fixedRand) Intn(n int) int {
	return f.value % n
}

func pos(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}
