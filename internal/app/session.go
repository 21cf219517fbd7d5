package app

import (
	"context"
	"fmt"

	"toruslife/internal/ctxlog"
	"toruslife/internal/store"
	"toruslife/pkg/core"
	"toruslife/pkg/universe"
)

// Session owns the running universe on behalf of a host loop: pausing,
// single steps, reseeding and persistence. It has no windowing dependency.
type Session struct {
	u     *universe.Universe
	store *store.Store
	seed  int64

	paused   bool
	stepOnce bool
}

// NewSession builds the universe described by cfg, restoring it from
// cfg.StatePath when a usable save exists there.
func NewSession(ctx context.Context, cfg *Config) (*Session, error) {
	logger := ctxlog.FromContext(ctx)

	s := &Session{seed: cfg.ResolveSeed()}
	src := core.NewRNG(s.seed)

	var err error
	if cfg.StatePath != "" {
		s.store = store.New(cfg.StatePath)
		s.u, err = s.store.Restore(ctx, cfg.UniverseConfig(), src)
	} else {
		s.u, err = cfg.UniverseConfig().Build(src)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build universe: %w", err)
	}

	logger.Info("Universe ready",
		"width", s.u.Width(),
		"height", s.u.Height(),
		"seed", s.seed,
		"population", s.u.Population(),
	)
	return s, nil
}

// Universe returns the simulated grid. Callers should treat it as read-only.
func (s *Session) Universe() *universe.Universe { return s.u }

// Seed returns the seed of the last randomization.
func (s *Session) Seed() int64 { return s.seed }

// Paused reports whether Advance is currently skipping ticks.
func (s *Session) Paused() bool { return s.paused }

// TogglePause flips the paused flag.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Resume clears the paused flag.
func (s *Session) Resume() { s.paused = false }

// StepOnce requests a single tick on the next Advance, even while paused.
func (s *Session) StepOnce() { s.stepOnce = true }

// Advance is called once per host update. It ticks the universe exactly once
// unless paused with no pending single step, and reports whether it ticked.
func (s *Session) Advance() bool {
	if s.paused && !s.stepOnce {
		return false
	}
	s.u.Tick()
	s.stepOnce = false
	return true
}

// Reseed re-randomizes the universe from seed.
func (s *Session) Reseed(seed int64) {
	s.seed = seed
	s.u.Reset(core.NewRNG(seed))
	s.stepOnce = false
}

// Clear kills every cell.
func (s *Session) Clear() { s.u.Clear() }

// Toggle flips the cell at (row, col).
func (s *Session) Toggle(row, col uint32) error {
	c, err := s.u.CellState(row, col)
	if err != nil {
		return err
	}
	if c == universe.Alive {
		return s.u.Set(row, col, universe.Dead)
	}
	return s.u.Set(row, col, universe.Alive)
}

// Status is a one-line summary for on-screen display.
func (s *Session) Status() string {
	status := fmt.Sprintf("gen %d  pop %d", s.u.Generation(), s.u.Population())
	if s.paused {
		status += "  [paused]"
	}
	return status
}

// Save persists the universe when the session has a state path.
func (s *Session) Save(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, s.u); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Saved universe", "path", s.store.Path(), "generation", s.u.Generation())
	return nil
}
