package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/wallbreak/bfs"
	"github.com/katalvlaran/wallbreak/maze"
)

// ErrInvalidConfig is returned by Validate and Load for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every setting the CLI needs.
type Config struct {
	Rows        int
	Cols        int
	Density     float64
	Seed        int64
	MaxAttempts int

	BreakWall bool
	MaxStates int

	LogLevel  string
	LogFormat string
}

// hclFile is the top-level structure of a config file for decoding.
type hclFile struct {
	Maze   *hclMaze   `hcl:"maze,block"`
	Search *hclSearch `hcl:"search,block"`
	Log    *hclLog    `hcl:"log,block"`
}

type hclMaze struct {
	Rows        *int     `hcl:"rows,optional"`
	Cols        *int     `hcl:"cols,optional"`
	Density     *float64 `hcl:"density,optional"`
	Seed        *int64   `hcl:"seed,optional"`
	MaxAttempts *int     `hcl:"max_attempts,optional"`
}

type hclSearch struct {
	BreakWall *bool `hcl:"break_wall,optional"`
	MaxStates *int  `hcl:"max_states,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Rows:        maze.DefaultRows,
		Cols:        maze.DefaultCols,
		Density:     maze.DefaultDensity,
		Seed:        0,
		MaxAttempts: maze.DefaultMaxAttempts,
		BreakWall:   false,
		MaxStates:   0,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads and validates the HCL file at path.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source on top of Default and validates the result.
// filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(), &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}

	cfg := Default()
	cfg.apply(&raw)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// evalContext exposes the built-in defaults as variables.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_rows":    cty.NumberIntVal(maze.DefaultRows),
			"default_cols":    cty.NumberIntVal(maze.DefaultCols),
			"default_density": cty.NumberFloatVal(maze.DefaultDensity),
		},
	}
}

func (c *Config) apply(raw *hclFile) {
	if m := raw.Maze; m != nil {
		setIf(&c.Rows, m.Rows)
		setIf(&c.Cols, m.Cols)
		setIf(&c.Density, m.Density)
		setIf(&c.Seed, m.Seed)
		setIf(&c.MaxAttempts, m.MaxAttempts)
	}
	if s := raw.Search; s != nil {
		setIf(&c.BreakWall, s.BreakWall)
		setIf(&c.MaxStates, s.MaxStates)
	}
	if l := raw.Log; l != nil {
		setIf(&c.LogLevel, l.Level)
		setIf(&c.LogFormat, l.Format)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Rows < maze.MinSize || c.Cols < maze.MinSize:
		return fmt.Errorf("%w: maze must be at least %dx%d, got %dx%d", ErrInvalidConfig, maze.MinSize, maze.MinSize, c.Rows, c.Cols)
	case c.Density < 0 || c.Density >= 1:
		return fmt.Errorf("%w: density %v must be in [0, 1)", ErrInvalidConfig, c.Density)
	case c.MaxAttempts < 0:
		return fmt.Errorf("%w: max_attempts cannot be negative (%d)", ErrInvalidConfig, c.MaxAttempts)
	case c.MaxStates < 0:
		return fmt.Errorf("%w: max_states cannot be negative (%d)", ErrInvalidConfig, c.MaxStates)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format must be 'text' or 'json', got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// MazeOptions converts the maze settings for maze.New.
func (c *Config) MazeOptions() *maze.Options {
	return &maze.Options{
		Rows:        c.Rows,
		Cols:        c.Cols,
		Density:     c.Density,
		Seed:        c.Seed,
		MaxAttempts: c.MaxAttempts,
	}
}

// SearchOptions converts the search settings for bfs.Search.
func (c *Config) SearchOptions() []bfs.Option {
	return []bfs.Option{
		bfs.WithWallBreak(c.BreakWall),
		bfs.WithMaxStates(c.MaxStates),
	}
}
