package scriptval

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// SizeLimits holds the per-kind ceilings enforced by the size guard.
// A ceiling of 0 means unlimited.
type SizeLimits struct {
	MaxArraySize  int `toml:"max_array_size"`  // elements, counted through nesting
	MaxStringSize int `toml:"max_string_size"` // bytes of UTF-8
	MaxBlobSize   int `toml:"max_blob_size"`   // bytes
}

// Config holds configuration for a scriptval Engine. It is read once at
// construction and never mutated during an evaluation; to change limits,
// build a new Engine between evaluations.
type Config struct {
	Debug bool `toml:"debug"`

	// IntWidth selects the integer width the engine operates at: 32 or 64.
	// It drives both checked-arithmetic bounds and the bit-field width.
	IntWidth int `toml:"int_width"`

	// Unchecked disables arithmetic and size guarding for throughput.
	// Integer overflow then wraps silently and size ceilings are ignored.
	// Division by zero is still reported (the Go runtime traps it), and a
	// zero-step range is still rejected because it would iterate forever.
	Unchecked bool `toml:"unchecked"`

	Limits SizeLimits `toml:"limits"`
}

// DefaultConfig returns default configuration: 64-bit integers, all checks
// enabled, no size ceilings
func DefaultConfig() *Config {
	return &Config{
		Debug:     false,
		IntWidth:  64,
		Unchecked: false,
		Limits:    SizeLimits{},
	}
}

// normalize fills unset fields and validates the width
func (c *Config) normalize() error {
	if c.IntWidth == 0 {
		c.IntWidth = 64
	}
	if c.IntWidth != 32 && c.IntWidth != 64 {
		return fmt.Errorf("invalid int_width %d: must be 32 or 64", c.IntWidth)
	}
	if c.Limits.MaxArraySize < 0 || c.Limits.MaxStringSize < 0 || c.Limits.MaxBlobSize < 0 {
		return fmt.Errorf("size limits must not be negative")
	}
	return nil
}

// LoadConfigFile reads a TOML configuration file. Missing fields keep their
// defaults, so a file may set only the limits it cares about:
//
//	int_width = 64
//	[limits]
//	max_array_size = 500
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := config.normalize(); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return config, nil
}
