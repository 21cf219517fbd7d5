// Package universe implements Conway's Game of Life on a fixed-size torus.
//
// A Universe owns its cells exclusively. Reads go through the checked
// accessors, and Tick computes each generation from a read-only view of the
// previous one into a separate buffer before swapping it in.
package universe

import (
	"fmt"
	"math"

	"toruslife/pkg/core"
)

const (
	DefaultWidth  uint32 = 64
	DefaultHeight uint32 = 64

	// AliveChance is the probability that a freshly randomized cell starts Alive.
	AliveChance = 0.7
)

// Universe is a toroidal Life grid stored in row-major order.
type Universe struct {
	width, height uint32
	cells         []Cell
	next          []Cell
	generation    uint64
}

// New returns a width x height universe with every cell drawn from src.
func New(width, height uint32, src core.BoolSource) (*Universe, error) {
	u, err := Empty(width, height)
	if err != nil {
		return nil, err
	}
	u.randomize(src)
	return u, nil
}

// NewDefault returns a randomized universe of DefaultWidth x DefaultHeight.
func NewDefault(src core.BoolSource) *Universe {
	u, _ := New(DefaultWidth, DefaultHeight, src)
	return u
}

// Empty returns a width x height universe with every cell Dead.
func Empty(width, height uint32) (*Universe, error) {
	n, err := cellCount(width, height)
	if err != nil {
		return nil, err
	}
	return &Universe{
		width:  width,
		height: height,
		cells:  make([]Cell, n),
		next:   make([]Cell, n),
	}, nil
}

func cellCount(width, height uint32) (int, error) {
	if width == 0 || height == 0 {
		return 0, fmt.Errorf("%w: %dx%d has no cells", ErrInvalidDimensions, width, height)
	}
	n := uint64(width) * uint64(height)
	if n > math.MaxUint32 || n > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %dx%d overflows the cell index", ErrInvalidDimensions, width, height)
	}
	return int(n), nil
}

func (u *Universe) randomize(src core.BoolSource) {
	for i := range u.cells {
		u.cells[i] = Dead
		if src.Chance(AliveChance) {
			u.cells[i] = Alive
		}
	}
}

// Width returns the number of columns.
func (u *Universe) Width() uint32 { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() uint32 { return u.height }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: int(u.width), H: int(u.height)} }

// Generation returns how many ticks have run since construction or the last reset.
func (u *Universe) Generation() uint64 { return u.generation }

// Len returns the number of cells, always Width*Height.
func (u *Universe) Len() int { return len(u.cells) }

func (u *Universe) index(row, col uint32) int { return int(row*u.width + col) }

func (u *Universe) inBounds(row, col uint32) bool { return row < u.height && col < u.width }

// CellState returns the cell at (row, col).
func (u *Universe) CellState(row, col uint32) (Cell, error) {
	if !u.inBounds(row, col) {
		return Dead, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, u.width, u.height)
	}
	return u.cells[u.index(row, col)], nil
}

// Alive reports whether (row, col) holds a live cell. Coordinates outside
// the grid report false.
func (u *Universe) Alive(row, col uint32) bool {
	return u.inBounds(row, col) && u.cells[u.index(row, col)] == Alive
}

// Set overwrites the cell at (row, col).
func (u *Universe) Set(row, col uint32, c Cell) error {
	if !u.inBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, u.width, u.height)
	}
	if !c.valid() {
		return fmt.Errorf("universe: invalid cell value %d", c)
	}
	u.cells[u.index(row, col)] = c
	return nil
}

// Cells returns a copy of the current generation in row-major order.
func (u *Universe) Cells() []Cell {
	return append([]Cell(nil), u.cells...)
}

// Population counts live cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cells {
		n += c.Int()
	}
	return n
}

// Clear kills every cell and restarts the generation count.
func (u *Universe) Clear() {
	for i := range u.cells {
		u.cells[i] = Dead
	}
	u.generation = 0
}

// Reset re-randomizes every cell from src and restarts the generation count.
func (u *Universe) Reset(src core.BoolSource) {
	u.randomize(src)
	u.generation = 0
}

// wrap moves v by delta on an axis of length n, wrapping around the edges.
func wrap(v uint32, delta int, n uint32) uint32 {
	return uint32((int64(v) + int64(delta) + int64(n)) % int64(n))
}

// NeighborCount returns the number of live cells among the eight toroidal
// neighbors of (row, col). Rows wrap on the height and columns on the width.
func (u *Universe) NeighborCount(row, col uint32) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := wrap(row, dr, u.height)
			nc := wrap(col, dc, u.width)
			n += u.cells[u.index(nr, nc)].Int()
		}
	}
	return n
}

// Tick advances the universe by one generation.
func (u *Universe) Tick() {
	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			idx := u.index(row, col)
			u.next[idx] = u.cells[idx].next(u.NeighborCount(row, col))
		}
	}
	u.cells, u.next = u.next, u.cells
	u.generation++
}
