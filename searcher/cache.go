package searcher

import (
	"catmouse/game"
	"sync"
)

// EvaluationCache memoizes board scores. Entries are never evicted: the key
// space is bounded by (rows*cols)^3, so a cache may be shared across every
// game of a process.
type EvaluationCache struct {
	mu     sync.RWMutex
	scores map[game.Key]int
}

func NewEvaluationCache() *EvaluationCache {
	return &EvaluationCache{scores: make(map[game.Key]int)}
}

// Evaluate scores a position from the pursuer's perspective: the negative
// Manhattan distance between pursuer and evader. Closer is better.
func (c *EvaluationCache) Evaluate(key game.Key) int {
	score, _ := c.lookup(key)
	return score
}

func (c *EvaluationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.scores)
}

func (c *EvaluationCache) lookup(key game.Key) (score int, hit bool) {
	c.mu.RLock()
	score, hit = c.scores[key]
	c.mu.RUnlock()
	if hit {
		return score, true
	}

	score = -game.Distance(key.Pursuer, key.Evader)
	c.mu.Lock()
	c.scores[key] = score
	c.mu.Unlock()
	return score, false
}
