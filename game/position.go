package game

import "fmt"

// Position is a (row, column) cell on the grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (p Position) add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Step order is up, down, left, right. Search breaks ties by this order.
var directions = []Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// InBounds reports whether p lies within [0,rows)x[0,cols).
func InBounds(rows, cols int, p Position) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// LegalMoves returns every cell one orthogonal step away from pos that stays
// on the grid, in up, down, left, right order.
func LegalMoves(rows, cols int, pos Position) []Position {
	moves := make([]Position, 0, len(directions))
	for _, d := range directions {
		next := pos.add(d)
		if InBounds(rows, cols, next) {
			moves = append(moves, next)
		}
	}
	return moves
}

// Distance is the Manhattan distance between a and b.
func Distance(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
