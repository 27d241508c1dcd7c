// Package scriptval implements the dynamic value runtime of an embeddable
// scripting engine: growable arrays, UTF-8 text addressed by character,
// raw byte blobs, and fixed-width integers viewed as bit fields, all
// sharing one indexing/slicing convention, with checked arithmetic and
// recursive size limiting.
//
// The surrounding evaluator (parser, dispatch, variable scoping) is a
// separate concern; it hands this package operation requests against values
// it owns and receives resolved results, absent-value markers, or typed
// guard conditions back.
//
// Basic usage:
//
//	e := scriptval.New(&scriptval.Config{
//		Limits: scriptval.SizeLimits{MaxArraySize: 500},
//	})
//	a := scriptval.NewArray(int64(2), int64(3))
//	_ = e.ArrayInsert(a, 0, int64(1)) // [1, 2, 3]
package scriptval

// Engine owns the configured guards for one evaluation context. The
// configuration is read at construction and immutable afterwards; build a
// new Engine between evaluations to change it. An Engine serves a single
// logical thread of control and provides no internal synchronization.
type Engine struct {
	config *Config
	logger *Logger
	arith  *ArithGuard
	sizes  *SizeGuard
}

// New creates a new Engine
func New(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	cfgErr := config.normalize()
	logger := NewLogger(config.Debug)
	if cfgErr != nil {
		logger.WarnCat(CatConfig, "%v; using defaults", cfgErr)
		config = DefaultConfig()
	}
	return &Engine{
		config: config,
		logger: logger,
		arith:  NewArithGuard(config, logger),
		sizes:  NewSizeGuard(config, logger),
	}
}

// Config returns the engine configuration (read-only by convention)
func (e *Engine) Config() *Config {
	return e.config
}

// Logger returns the engine logger
func (e *Engine) Logger() *Logger {
	return e.logger
}

// Arith returns the checked-arithmetic guard
func (e *Engine) Arith() *ArithGuard {
	return e.arith
}

// Sizes returns the size guard
func (e *Engine) Sizes() *SizeGuard {
	return e.sizes
}

// BitWidth returns the configured integer width used for bit-field access
func (e *Engine) BitWidth() int {
	return e.config.IntWidth
}
