package agent

import (
	"catmouse/experiments/metrics"
	"catmouse/game"
)

type Agent interface {
	// FindMove returns the next cell for the piece this agent controls and
	// performance metrics (if collected) from the search
	FindMove(board game.Board) (game.Position, metrics.SearchMetric, error)
}
