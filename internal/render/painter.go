//go:build ebiten

package render

import (
	"toruslife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws a CellGrid onto an ebiten image. With grid lines it strokes
// the lattice and fills live cells; without them it uploads one pixel per
// cell and scales the image up.
type Painter struct {
	layout  Layout
	palette Palette

	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a grid of the given size.
func NewPainter(size core.Size, layout Layout, palette Palette) *Painter {
	p := &Painter{layout: layout, palette: palette, w: size.W, h: size.H}
	if layout.Gutter == 0 {
		p.buf = make([]byte, 4*size.W*size.H)
		p.img = ebiten.NewImage(size.W, size.H)
	}
	return p
}

// Layout returns the pixel layout in use.
func (p *Painter) Layout() Layout { return p.layout }

// Draw renders g onto dst. Grids whose size differs from the painter's are skipped.
func (p *Painter) Draw(dst *ebiten.Image, g core.CellGrid) {
	if s := g.Size(); s.W != p.w || s.H != p.h {
		return
	}
	if p.layout.Gutter == 0 {
		p.blit(dst, g)
		return
	}
	p.drawLattice(dst, g)
}

func (p *Painter) blit(dst *ebiten.Image, g core.CellGrid) {
	FillRGBA(p.buf, g, p.palette.Alive, p.palette.Dead)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.layout.CellSize), float64(p.layout.CellSize))
	dst.DrawImage(p.img, op)
}

func (p *Painter) drawLattice(dst *ebiten.Image, g core.CellGrid) {
	dst.Fill(p.palette.Dead)

	cw, ch := p.layout.CanvasSize(core.Size{W: p.w, H: p.h})
	for i := 0; i <= p.w; i++ {
		x := float32(p.layout.LinePos(i)) + 0.5
		vector.StrokeLine(dst, x, 0, x, float32(ch), 1, p.palette.Line, false)
	}
	for j := 0; j <= p.h; j++ {
		y := float32(p.layout.LinePos(j)) + 0.5
		vector.StrokeLine(dst, 0, y, float32(cw), y, 1, p.palette.Line, false)
	}

	size := float32(p.layout.CellSize)
	for row := 0; row < p.h; row++ {
		for col := 0; col < p.w; col++ {
			if !g.Alive(uint32(row), uint32(col)) {
				continue
			}
			x := float32(p.layout.CellOrigin(col))
			y := float32(p.layout.CellOrigin(row))
			vector.DrawFilledRect(dst, x, y, size, size, p.palette.Alive, false)
		}
	}
}
