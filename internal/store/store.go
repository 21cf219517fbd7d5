// Package store persists universe state between runs as a msgpack map of
// named fields ("width", "height", "cells").
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"toruslife/internal/ctxlog"
	"toruslife/pkg/core"
	"toruslife/pkg/universe"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNoState is returned by Load when nothing has been saved yet.
var ErrNoState = errors.New("store: no saved state")

// record is the on-disk layout. Unknown keys are skipped on decode and
// missing keys keep their zero values.
type record struct {
	Width  uint32 `msgpack:"width"`
	Height uint32 `msgpack:"height"`
	Cells  []byte `msgpack:"cells"`
}

// Encode writes st to w.
func Encode(w io.Writer, st universe.State) error {
	rec := record{Width: st.Width, Height: st.Height, Cells: make([]byte, len(st.Cells))}
	for i, c := range st.Cells {
		rec.Cells[i] = byte(c)
	}
	if err := msgpack.NewEncoder(w).Encode(&rec); err != nil {
		return fmt.Errorf("store: encode state: %w", err)
	}
	return nil
}

// Decode reads a state from r. The result is not validated; pass it to
// universe.FromState for that.
func Decode(r io.Reader) (universe.State, error) {
	var rec record
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return universe.State{}, fmt.Errorf("store: decode state: %w", err)
	}
	st := universe.State{Width: rec.Width, Height: rec.Height}
	if rec.Cells != nil {
		st.Cells = make([]universe.Cell, len(rec.Cells))
		for i, b := range rec.Cells {
			st.Cells[i] = universe.Cell(b)
		}
	}
	return st, nil
}

// Store saves and restores a single universe at a file path.
type Store struct {
	path string
}

// New returns a Store backed by path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Save writes u's state, replacing any previous save atomically.
func (s *Store) Save(ctx context.Context, u *universe.Universe) error {
	logger := ctxlog.FromContext(ctx)

	var buf bytes.Buffer
	if err := Encode(&buf, u.State()); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: create temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("store: replace %s: %w", s.path, err)
	}

	logger.Debug("Saved universe state", "path", s.path, "width", u.Width(), "height", u.Height(), "bytes", buf.Len())
	return nil
}

// Load reads and validates the saved universe. It returns ErrNoState when
// the file does not exist.
func (s *Store) Load(ctx context.Context) (*universe.Universe, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", s.path, err)
	}
	defer f.Close()

	st, err := Decode(f)
	if err != nil {
		return nil, err
	}
	u, err := universe.FromState(st)
	if err != nil {
		return nil, fmt.Errorf("store: restore %s: %w", s.path, err)
	}

	ctxlog.FromContext(ctx).Debug("Loaded universe state", "path", s.path, "width", u.Width(), "height", u.Height())
	return u, nil
}

// Restore returns the saved universe, or a fresh one built from cfg and src
// when nothing usable is saved. Unreadable state is logged and discarded; the
// only error is a cfg that cannot build a universe.
func (s *Store) Restore(ctx context.Context, cfg universe.Config, src core.BoolSource) (*universe.Universe, error) {
	logger := ctxlog.FromContext(ctx)

	u, err := s.Load(ctx)
	switch {
	case err == nil:
		logger.Info("Restored universe from saved state", "path", s.path, "population", u.Population())
		return u, nil
	case errors.Is(err, ErrNoState):
		logger.Info("No saved state, starting fresh", "path", s.path)
	default:
		logger.Warn("Discarding unreadable saved state", "path", s.path, "error", err)
	}
	return cfg.Build(src)
}
