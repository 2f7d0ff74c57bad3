package agent

import (
	"catmouse/experiments/metrics"
	"catmouse/game"
	"catmouse/searcher"
)

type pursuerAgent struct {
	searcher searcher.Searcher
}

// NewPursuerAgent returns an agent that moves the pursuer by search.
func NewPursuerAgent(s searcher.Searcher) Agent {
	return pursuerAgent{searcher: s}
}

func (a pursuerAgent) FindMove(board game.Board) (game.Position, metrics.SearchMetric, error) {
	return a.searcher.FindMove(board)
}
