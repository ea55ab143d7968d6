package hashtab

import (
	"fmt"
	"log/slog"
)

// ============================================================================
// Configuration
// ============================================================================

const (
	// DefaultInitialCapacity is the number of slots a new Table starts with.
	DefaultInitialCapacity = 8
	// DefaultLoadThreshold is the highest occupancy ratio a Put may leave
	// behind.
	DefaultLoadThreshold = 0.75
	// DefaultGrowthFactor is the multiplier applied to the capacity on growth.
	DefaultGrowthFactor = 2
	// MaxGrowthFactor is the largest multiplier WithGrowthFactor accepts.
	MaxGrowthFactor = 1 << 10
)

// Config defines configurable options for Table initialization.
// Options are applied in order by New and validated once all of them have
// run; an invalid combination is a precondition violation.
type Config struct {
	// initialCapacity is the slot count of the empty table.
	// Must be at least 1 so that probing modulo capacity is well-defined.
	initialCapacity int

	// loadThreshold bounds occupancy/capacity after every Put: Put grows
	// first whenever one more entry would exceed it. Must be in (0, 1].
	loadThreshold float64

	// growthFactor multiplies the capacity on every growth.
	// Must be in [2, MaxGrowthFactor].
	growthFactor int

	// logger receives debug records for growth and teardown.
	// If nil, records are discarded.
	logger *slog.Logger
}

func defaultConfig() Config {
	return Config{
		initialCapacity: DefaultInitialCapacity,
		loadThreshold:   DefaultLoadThreshold,
		growthFactor:    DefaultGrowthFactor,
	}
}

// WithInitialCapacity configures the number of slots of a new Table.
// Unlike a size hint, the value is used as-is: it is not rounded up and the
// load threshold is not applied to it.
func WithInitialCapacity(n int) func(*Config) {
	return func(c *Config) {
		c.initialCapacity = n
	}
}

// WithLoadThreshold configures the occupancy ratio that triggers growth.
//
// Usage:
//
//	t := New(HashString, Equal[string], FormatPrinter[string, int], nil,
//		WithLoadThreshold(0.5))
func WithLoadThreshold(f float64) func(*Config) {
	return func(c *Config) {
		c.loadThreshold = f
	}
}

// WithGrowthFactor configures the capacity multiplier applied on growth.
func WithGrowthFactor(n int) func(*Config) {
	return func(c *Config) {
		c.growthFactor = n
	}
}

// WithLogger sets the logger used for debug records. Pass nil to discard.
func WithLogger(l *slog.Logger) func(*Config) {
	return func(c *Config) {
		c.logger = l
	}
}

func (c *Config) validate() error {
	if c.initialCapacity < 1 {
		return fmt.Errorf("%w: initial capacity %d < 1", ErrInvalidConfig, c.initialCapacity)
	}
	// NaN fails both comparisons and is rejected here as well.
	if !(c.loadThreshold > 0 && c.loadThreshold <= 1) {
		return fmt.Errorf("%w: load threshold %v not in (0, 1]", ErrInvalidConfig, c.loadThreshold)
	}
	if c.growthFactor < 2 || c.growthFactor > MaxGrowthFactor {
		return fmt.Errorf("%w: growth factor %d not in [2, %d]", ErrInvalidConfig, c.growthFactor, MaxGrowthFactor)
	}
	return nil
}
