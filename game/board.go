package game

import (
	"fmt"
	"strings"
)

// Board is a snapshot of the grid: its fixed shape plus the three pieces.
// Boards are values; moving a piece returns a new Board.
type Board struct {
	Rows    int
	Cols    int
	Pursuer Position
	Evader  Position
	Exit    Position
}

// NewBoard starts a game: pursuer in the bottom-right corner, evader in the
// top-left corner, exit on a uniformly random cell.
func NewBoard(rows, cols int, rng Rand) (Board, error) {
	if err := checkSize(rows, cols); err != nil {
		return Board{}, err
	}
	exit := Position{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	return NewBoardAt(rows, cols, Position{Row: rows - 1, Col: cols - 1}, Position{}, exit)
}

// NewBoardAt builds a board with explicit piece positions.
func NewBoardAt(rows, cols int, pursuer, evader, exit Position) (Board, error) {
	b := Board{
		Rows:    rows,
		Cols:    cols,
		Pursuer: pursuer,
		Evader:  evader,
		Exit:    exit,
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate checks the grid shape and that every piece is on the grid.
func (b Board) Validate() error {
	if err := checkSize(b.Rows, b.Cols); err != nil {
		return err
	}
	pieces := []struct {
		name string
		pos  Position
	}{
		{"pursuer", b.Pursuer},
		{"evader", b.Evader},
		{"exit", b.Exit},
	}
	for _, piece := range pieces {
		if !InBounds(b.Rows, b.Cols, piece.pos) {
			return fmt.Errorf("%s at %v on %dx%d grid: %w", piece.name, piece.pos, b.Rows, b.Cols, ErrOutOfBounds)
		}
	}
	return nil
}

// A 1x1 grid is rejected: no piece could ever move.
func checkSize(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidSize)
	}
	if rows*cols < 2 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrNoLegalMoves)
	}
	return nil
}

func (b Board) WithPursuer(p Position) Board {
	b.Pursuer = p
	return b
}

func (b Board) WithEvader(p Position) Board {
	b.Evader = p
	return b
}

func (b Board) Key() Key {
	return Key{Pursuer: b.Pursuer, Evader: b.Evader, Exit: b.Exit}
}

// PursuerMoves returns the pursuer's legal steps.
func (b Board) PursuerMoves() []Position {
	return LegalMoves(b.Rows, b.Cols, b.Pursuer)
}

// EvaderMoves returns the evader's legal steps.
func (b Board) EvaderMoves() []Position {
	return LegalMoves(b.Rows, b.Cols, b.Evader)
}

// String draws the grid one row per line: C for the cat (pursuer), M for the
// mouse (evader), E for the exit and . for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.glyph(Position{Row: r, Col: c}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b Board) glyph(p Position) byte {
	switch p {
	case b.Pursuer:
		return 'C'
	case b.Evader:
		return 'M'
	case b.Exit:
		return 'E'
	default:
		return '.'
	}
}
