package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceCyclesScriptedValues(t *testing.T) {
	s := NewSequence(true, false, false)

	got := make([]bool, 0, 7)
	for i := 0; i < 7; i++ {
		got = append(got, s.Chance(0.5))
	}

	assert.Equal(t, []bool{true, false, false, true, false, false, true}, got)
	assert.Equal(t, 7, s.Drawn())
}

func TestEmptySequenceIsAlwaysFalse(t *testing.T) {
	s := NewSequence()
	for i := 0; i < 3; i++ {
		assert.False(t, s.Chance(1))
	}
}

func TestRNGIsDeterministicPerSeed(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Chance(0.7), b.Chance(0.7), "draw %d diverged", i)
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		assert.False(t, r.Chance(0))
		assert.True(t, r.Chance(1))
	}
}
