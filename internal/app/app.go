//go:build ebiten

package app

import (
	"context"
	"time"

	"toruslife/internal/ctxlog"
	"toruslife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	session *Session
	painter *render.Painter
	layout  render.Layout
}

// New constructs a Game for the provided session.
func New(ctx context.Context, session *Session, layout render.Layout) *Game {
	return &Game{
		ctx:     ctx,
		session: session,
		painter: render.NewPainter(session.Universe().Size(), layout, render.DefaultPalette()),
		layout:  layout,
	}
}

// Update handles per-frame input and advances the simulation by one tick.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.shutdown()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reseed(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := g.layout.CellAt(g.session.Universe().Size(), x, y); ok {
			_ = g.session.Toggle(row, col)
		}
	}

	g.session.Advance()
	return nil
}

func (g *Game) shutdown() {
	if err := g.session.Save(g.ctx); err != nil {
		ctxlog.FromContext(g.ctx).Error("Failed to save universe", "error", err)
	}
}

// Draw renders the current generation and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.session.Universe())
	ebitenutil.DebugPrint(screen, g.session.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.CanvasSize(g.session.Universe().Size())
}
