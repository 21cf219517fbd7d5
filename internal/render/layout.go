package render

import "toruslife/pkg/core"

// DefaultCellSize is the side of one cell in pixels.
const DefaultCellSize = 5

// Layout maps grid coordinates to canvas pixels. With a gutter, one-pixel
// grid lines separate neighboring cells and frame the whole board.
type Layout struct {
	CellSize int
	Gutter   int
}

// NewLayout returns a layout for the given cell size, with grid lines when
// lines is set. Non-positive sizes fall back to DefaultCellSize.
func NewLayout(cellSize int, lines bool) Layout {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	l := Layout{CellSize: cellSize}
	if lines {
		l.Gutter = 1
	}
	return l
}

// Pitch is the distance in pixels between the origins of adjacent cells.
func (l Layout) Pitch() int { return l.CellSize + l.Gutter }

// LinePos returns the pixel offset of the i-th grid line, 0 <= i <= n.
func (l Layout) LinePos(i int) int { return i * l.Pitch() }

// CellOrigin returns the pixel offset of the first pixel of cell i on either axis.
func (l Layout) CellOrigin(i int) int { return i*l.Pitch() + l.Gutter }

// CanvasSize returns the pixel dimensions needed to draw a grid of size s.
func (l Layout) CanvasSize(s core.Size) (int, int) {
	return s.W*l.Pitch() + l.Gutter, s.H*l.Pitch() + l.Gutter
}

// CellAt maps a canvas pixel back to the cell under it. ok is false for
// pixels on a grid line or outside the board.
func (l Layout) CellAt(s core.Size, x, y int) (row, col uint32, ok bool) {
	if x < l.Gutter || y < l.Gutter {
		return 0, 0, false
	}
	cx, ox := (x-l.Gutter)/l.Pitch(), (x-l.Gutter)%l.Pitch()
	cy, oy := (y-l.Gutter)/l.Pitch(), (y-l.Gutter)%l.Pitch()
	if cx >= s.W || cy >= s.H || ox >= l.CellSize || oy >= l.CellSize {
		return 0, 0, false
	}
	return uint32(cy), uint32(cx), true
}
