package game

// Rand is the randomness source used for exit placement and the evader's
// moves. *golang.org/x/exp/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Key identifies a board position for memoization. Exit is part of the key
// even though the distance score ignores it.
type Key struct {
	Pursuer Position
	Evader  Position
	Exit    Position
}
