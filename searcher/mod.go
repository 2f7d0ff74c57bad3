package searcher

import (
	"catmouse/experiments/metrics"
	"catmouse/game"
)

// DefaultDepth is the number of plies searched below each candidate move.
const DefaultDepth = 3

// Searcher picks the pursuer's next step.
type Searcher interface {
	FindMove(board game.Board) (game.Position, metrics.SearchMetric, error)
}
