package scriptval

import (
	"math"
)

// ArithGuard performs checked arithmetic at the configured integer width.
// Operands and results are carried in int64 regardless of width; a 32-bit
// engine simply rejects (or, unchecked, wraps) results outside int32 range.
// All operations are pure functions over their inputs.
type ArithGuard struct {
	width     int
	unchecked bool
	minInt    int64
	maxInt    int64
	logger    *Logger
}

// NewArithGuard creates a guard for the given configuration
func NewArithGuard(config *Config, logger *Logger) *ArithGuard {
	g := &ArithGuard{
		width:     config.IntWidth,
		unchecked: config.Unchecked,
		logger:    logger,
	}
	if g.width == 32 {
		g.minInt = math.MinInt32
		g.maxInt = math.MaxInt32
	} else {
		g.minInt = math.MinInt64
		g.maxInt = math.MaxInt64
	}
	return g
}

// Width returns the configured integer width (32 or 64)
func (g *ArithGuard) Width() int {
	return g.width
}

// wrap confines a raw result to the configured width, truncating silently.
// Only used on the unchecked path.
func (g *ArithGuard) wrap(x int64) int64 {
	if g.width == 32 {
		return int64(int32(x))
	}
	return x
}

func (g *ArithGuard) overflow(op string, a, b int64) (int64, error) {
	err := errOverflow(op, "%d and %d overflow %d-bit integer", a, b, g.width)
	g.logger.DebugCat(CatMath, "%v", err)
	return 0, err
}

// Add returns a+b, or ErrOverflow if the exact sum is unrepresentable
func (g *ArithGuard) Add(a, b int64) (int64, error) {
	if g.unchecked {
		return g.wrap(a + b), nil
	}
	if b > 0 && a > g.maxInt-b {
		return g.overflow("add", a, b)
	}
	if b < 0 && a < g.minInt-b {
		return g.overflow("add", a, b)
	}
	return a + b, nil
}

// Sub returns a-b, or ErrOverflow if the exact difference is unrepresentable
func (g *ArithGuard) Sub(a, b int64) (int64, error) {
	if g.unchecked {
		return g.wrap(a - b), nil
	}
	if b < 0 && a > g.maxInt+b {
		return g.overflow("sub", a, b)
	}
	if b > 0 && a < g.minInt+b {
		return g.overflow("sub", a, b)
	}
	return a - b, nil
}

// Mul returns a*b, or ErrOverflow if the exact product is unrepresentable
func (g *ArithGuard) Mul(a, b int64) (int64, error) {
	if g.unchecked {
		return g.wrap(a * b), nil
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == g.minInt && b == -1) || (b == g.minInt && a == -1) {
		return g.overflow("mul", a, b)
	}
	r := a * b
	if r/a != b || r > g.maxInt || r < g.minInt {
		return g.overflow("mul", a, b)
	}
	return r, nil
}

// Div returns a/b. Division by zero is always reported, even in unchecked
// mode, because the Go runtime traps it. minInt/-1 is an overflow.
func (g *ArithGuard) Div(a, b int64) (int64, error) {
	if b == 0 {
		err := errDivideByZero("div")
		g.logger.DebugCat(CatMath, "%v", err)
		return 0, err
	}
	if a == g.minInt && b == -1 {
		if g.unchecked {
			return g.minInt, nil // wraps
		}
		return g.overflow("div", a, b)
	}
	return a / b, nil
}

// Mod returns a%b, or ErrDivideByZero when b is zero
func (g *ArithGuard) Mod(a, b int64) (int64, error) {
	if b == 0 {
		err := errDivideByZero("mod")
		g.logger.DebugCat(CatMath, "%v", err)
		return 0, err
	}
	if a == g.minInt && b == -1 {
		return 0, nil
	}
	return a % b, nil
}

// Neg returns -a, or ErrOverflow for the minimum value
func (g *ArithGuard) Neg(a int64) (int64, error) {
	if a == g.minInt {
		if g.unchecked {
			return g.minInt, nil // wraps
		}
		return g.overflow("neg", a, -1)
	}
	return -a, nil
}

// Shl returns a shifted left by b bits. A shift count outside [0, width)
// or a result that loses bits is an overflow.
func (g *ArithGuard) Shl(a, b int64) (int64, error) {
	if g.unchecked {
		return g.wrap(a << uint(b&int64(g.width-1))), nil
	}
	if b < 0 || b >= int64(g.width) {
		return g.overflow("shl", a, b)
	}
	r := a << uint(b)
	if r>>uint(b) != a || r > g.maxInt || r < g.minInt {
		return g.overflow("shl", a, b)
	}
	return r, nil
}

// Shr returns a arithmetically shifted right by b bits. A shift count
// outside [0, width) is an overflow.
func (g *ArithGuard) Shr(a, b int64) (int64, error) {
	if g.unchecked {
		return g.wrap(a >> uint(b&int64(g.width-1))), nil
	}
	if b < 0 || b >= int64(g.width) {
		return g.overflow("shr", a, b)
	}
	return a >> uint(b), nil
}

func (g *ArithGuard) checkFloat(op string, r float64, inputs ...float64) (float64, error) {
	if g.unchecked {
		return r, nil
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		for _, in := range inputs {
			if math.IsInf(in, 0) || math.IsNaN(in) {
				return r, nil // non-finite input, result is not the guard's doing
			}
		}
		err := errInvalidFloatOp(op, r)
		g.logger.DebugCat(CatMath, "%v", err)
		return 0, err
	}
	return r, nil
}

// AddFloat returns a+b, or ErrInvalidFloatOp if finite inputs produced a
// non-finite result
func (g *ArithGuard) AddFloat(a, b float64) (float64, error) {
	return g.checkFloat("add", a+b, a, b)
}

// SubFloat returns a-b with the same finiteness check as AddFloat
func (g *ArithGuard) SubFloat(a, b float64) (float64, error) {
	return g.checkFloat("sub", a-b, a, b)
}

// MulFloat returns a*b with the same finiteness check as AddFloat
func (g *ArithGuard) MulFloat(a, b float64) (float64, error) {
	return g.checkFloat("mul", a*b, a, b)
}

// DivFloat returns a/b. Division of a finite value by zero produces a
// non-finite result and is therefore reported as ErrInvalidFloatOp.
func (g *ArithGuard) DivFloat(a, b float64) (float64, error) {
	return g.checkFloat("div", a/b, a, b)
}
