package maze

import "log/slog"

// Options configures maze generation.
type Options struct {
	Rows, Cols  int          // Grid size, clamped to at least MinSize
	Density     float64      // Random wall placements per cell, in [0, 1)
	Seed        int64        // Seed for reproducible mazes (0 = time-based)
	MaxAttempts int          // Retry ceiling before the open-grid fallback (0 = DefaultMaxAttempts)
	Logger      *slog.Logger // Optional; nil discards generator logs
}

// DefaultOptions returns the standard 10×15 maze with 25% wall density.
func DefaultOptions() *Options {
	return &Options{
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		Density:     DefaultDensity,
		Seed:        0,
		MaxAttempts: DefaultMaxAttempts,
		Logger:      nil, // nil → discard
	}
}
