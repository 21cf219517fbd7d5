package universe

import (
	"strconv"

	"toruslife/pkg/core"
)

// Config holds the dimensions of a universe.
type Config struct {
	Width  uint32
	Height uint32
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight}
}

// FromMap populates a Config from a string map. Keys "w" and "h" are read;
// values that do not parse as positive 32-bit integers keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Width = uint32(parsed)
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Height = uint32(parsed)
		}
	}
	return c
}

// Build constructs a randomized universe with the configured dimensions.
func (c Config) Build(src core.BoolSource) (*Universe, error) {
	return New(c.Width, c.Height, src)
}
