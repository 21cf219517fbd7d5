package universe

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Glyphs used by the text rendering.
const (
	AliveGlyph = "◼"
	DeadGlyph  = "◻"
)

// Int returns 1 for Alive and 0 for Dead.
func (c Cell) Int() int {
	if c == Alive {
		return 1
	}
	return 0
}

// String returns the cell's text glyph.
func (c Cell) String() string {
	if c == Alive {
		return AliveGlyph
	}
	return DeadGlyph
}

func (c Cell) valid() bool { return c == Dead || c == Alive }

// next applies the B3/S23 rule to a cell with n live neighbors.
func (c Cell) next(n int) Cell {
	switch {
	case c == Alive && (n == 2 || n == 3):
		return Alive
	case c == Alive:
		return Dead
	case n == 3:
		return Alive
	default:
		return c
	}
}
