package universe

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RenderText returns one line per row, one glyph per cell.
func (u *Universe) RenderText() []string {
	lines := make([]string, 0, u.height)
	var b strings.Builder
	for row := uint32(0); row < u.height; row++ {
		b.Reset()
		start := u.index(row, 0)
		for _, c := range u.cells[start : start+int(u.width)] {
			b.WriteString(c.String())
		}
		lines = append(lines, b.String())
	}
	return lines
}

// String renders the grid as newline-terminated rows of glyphs.
func (u *Universe) String() string {
	var b strings.Builder
	for _, line := range u.RenderText() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// FromRows parses a text pattern into an all-Dead universe seeded with the
// live cells it marks. '#', 'O', '*' and the alive glyph mark live cells;
// '.', ' ' and the dead glyph mark dead ones. Every row must have the same
// number of runes.
func FromRows(rows []string) (*Universe, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidPattern)
	}
	width := utf8.RuneCountInString(rows[0])
	u, err := Empty(uint32(width), uint32(len(rows)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	for row, line := range rows {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidPattern, row, n, width)
		}
		col := 0
		for _, r := range line {
			switch r {
			case '#', 'O', '*', '◼':
				u.cells[u.index(uint32(row), uint32(col))] = Alive
			case '.', ' ', '◻':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d col %d", ErrInvalidPattern, r, row, col)
			}
			col++
		}
	}
	return u, nil
}
