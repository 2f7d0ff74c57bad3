package engine

import "catmouse/experiments/metrics"

const (
	Evader  = "evader"
	Pursuer = "pursuer"
)

type Runner interface {
	// Run plays a game till the evader is captured or escapes, or a max number of plies is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
