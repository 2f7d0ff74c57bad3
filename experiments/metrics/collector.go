package metrics

import (
	"catmouse/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines  int
	Depth       int
	Duration    time.Duration
	Nodes       int
	Evaluations int
	CacheHits   int
	CacheSize   int
}

type MoveMetric struct {
	Step  int
	Mover string // "evader" or "pursuer"
	From  game.Position
	To    game.Position
	SearchMetric
}

type GameMetric struct {
	ID         string
	Rows       int
	Cols       int
	Exit       game.Position
	Outcome    game.Outcome
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(goroutines, depth int)
	AddNode()
	AddEvaluation(hit bool)
	Complete(cacheSize int) SearchMetric
}

type collector struct {
	goroutines  int
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	cacheHits   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cacheHits.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation(hit bool) {
	m.evaluations.Add(1)
	if hit {
		m.cacheHits.Add(1)
	}
}

func (m *collector) Complete(cacheSize int) SearchMetric {
	return SearchMetric{
		Goroutines:  m.goroutines,
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		CacheHits:   int(m.cacheHits.Load()),
		CacheSize:   cacheSize,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int)         {}
func (m *dummyCollector) AddNode()                            {}
func (m *dummyCollector) AddEvaluation(hit bool)              {}
func (m *dummyCollector) Complete(cacheSize int) SearchMetric { return SearchMetric{} }
