package render

import (
	"image/color"

	"toruslife/pkg/core"
)

// Palette holds the colors used to draw a board.
type Palette struct {
	Line  color.Color
	Alive color.Color
	Dead  color.Color
}

// DefaultPalette draws black cells and lines on white.
func DefaultPalette() Palette {
	return Palette{Line: color.Black, Alive: color.Black, Dead: color.White}
}

// FillRGBA writes one RGBA pixel per cell of g into buf in row-major order.
// buf must hold at least 4*W*H bytes.
func FillRGBA(buf []byte, g core.CellGrid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	s := g.Size()
	base := 0
	for row := 0; row < s.H; row++ {
		for col := 0; col < s.W; col++ {
			if g.Alive(uint32(row), uint32(col)) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
			} else {
				buf[base+0] = uint8(rOff >> 8)
				buf[base+1] = uint8(gOff >> 8)
				buf[base+2] = uint8(bOff >> 8)
				buf[base+3] = uint8(aOff >> 8)
			}
			base += 4
		}
	}
}
