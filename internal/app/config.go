package app

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"time"

	"toruslife/internal/render"
	"toruslife/pkg/universe"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    uint
	Height   uint
	CellSize int
	Lines    bool
	TPS      int
	Seed     int64

	StatePath  string
	ConfigPath string

	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     uint(universe.DefaultWidth),
		Height:    uint(universe.DefaultHeight),
		CellSize:  render.DefaultCellSize,
		Lines:     true,
		TPS:       60,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.UintVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.UintVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "scale", c.CellSize, "cell size in pixels")
	fs.BoolVar(&c.Lines, "lines", c.Lines, "draw grid lines between cells")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized grids (0 picks one from the clock)")
	fs.StringVar(&c.StatePath, "state", c.StatePath, "file to restore state from and save it to on exit")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional HCL config file; explicit flags win")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
}

// fileConfig is the HCL layout of a config file. Every attribute is optional.
type fileConfig struct {
	Width     *int         `hcl:"width,optional"`
	Height    *int         `hcl:"height,optional"`
	Seed      *int64       `hcl:"seed,optional"`
	StatePath *string      `hcl:"state,optional"`
	Window    *windowBlock `hcl:"window,block"`
	Log       *logBlock    `hcl:"log,block"`
}

type windowBlock struct {
	CellSize *int  `hcl:"cell_size,optional"`
	Lines    *bool `hcl:"lines,optional"`
	TPS      *int  `hcl:"tps,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

func parseFile(path string) (*fileConfig, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	var fc fileConfig
	if diags := gohcl.DecodeBody(f.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return &fc, nil
}

// Load reads the HCL file named by ConfigPath, if any, and applies each value
// it sets unless the matching flag was given explicitly on fs.
func (c *Config) Load(fs *flag.FlagSet) error {
	if c.ConfigPath == "" {
		return nil
	}
	fc, err := parseFile(c.ConfigPath)
	if err != nil {
		return err
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var errs []error
	setSize := func(name string, dst *uint, v *int) {
		if v == nil || explicit[name] {
			return
		}
		if *v <= 0 {
			errs = append(errs, fmt.Errorf("%s: %s must be positive, got %d", c.ConfigPath, name, *v))
			return
		}
		*dst = uint(*v)
	}
	setSize("w", &c.Width, fc.Width)
	setSize("h", &c.Height, fc.Height)
	if fc.Seed != nil && !explicit["seed"] {
		c.Seed = *fc.Seed
	}
	if fc.StatePath != nil && !explicit["state"] {
		c.StatePath = *fc.StatePath
	}
	if w := fc.Window; w != nil {
		if w.CellSize != nil && !explicit["scale"] {
			c.CellSize = *w.CellSize
		}
		if w.Lines != nil && !explicit["lines"] {
			c.Lines = *w.Lines
		}
		if w.TPS != nil && !explicit["tps"] {
			c.TPS = *w.TPS
		}
	}
	if l := fc.Log; l != nil {
		if l.Level != nil && !explicit["log-level"] {
			c.LogLevel = *l.Level
		}
		if l.Format != nil && !explicit["log-format"] {
			c.LogFormat = *l.Format
		}
	}
	return errors.Join(errs...)
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Width == 0 || c.Width > math.MaxUint32 {
		errs = append(errs, fmt.Errorf("width must be in 1..%d, got %d", uint32(math.MaxUint32), c.Width))
	}
	if c.Height == 0 || c.Height > math.MaxUint32 {
		errs = append(errs, fmt.Errorf("height must be in 1..%d, got %d", uint32(math.MaxUint32), c.Height))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.CellSize))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// UniverseConfig returns the grid dimensions. Call Validate first.
func (c *Config) UniverseConfig() universe.Config {
	return universe.Config{Width: uint32(c.Width), Height: uint32(c.Height)}
}

// Layout returns the pixel layout for the configured cell size.
func (c *Config) Layout() render.Layout {
	return render.NewLayout(c.CellSize, c.Lines)
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is 0.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
