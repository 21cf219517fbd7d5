package core

import "math/rand/v2"

// BoolSource supplies the random bits used to seed a grid.
type BoolSource interface {
	// Chance reports true with probability p.
	Chance(p float64) bool
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance draws a uniform float in [0, 1) and reports whether it falls below p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Sequence replays a scripted list of outcomes, ignoring the requested
// probability. It cycles once the list is exhausted; an empty Sequence always
// reports false.
type Sequence struct {
	vals []bool
	pos  int
}

// NewSequence returns a Sequence over vals.
func NewSequence(vals ...bool) *Sequence {
	return &Sequence{vals: append([]bool(nil), vals...)}
}

// Chance returns the next scripted outcome.
func (s *Sequence) Chance(float64) bool {
	if len(s.vals) == 0 {
		return false
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}

// Drawn reports how many outcomes have been consumed.
func (s *Sequence) Drawn() int { return s.pos }
