package scriptval

import "fmt"

// ErrKind classifies a guard rejection
type ErrKind int

const (
	ErrSizeLimit ErrKind = iota // growth would exceed a configured ceiling
	ErrOverflow                 // integer result not representable at the configured width
	ErrDivideByZero
	ErrInvalidFloatOp // finite inputs produced a non-finite result
	ErrInvalidRangeStep
)

// String returns the condition name as surfaced to the evaluator
func (k ErrKind) String() string {
	switch k {
	case ErrSizeLimit:
		return "SizeLimitExceeded"
	case ErrOverflow:
		return "ArithOverflow"
	case ErrDivideByZero:
		return "DivideByZero"
	case ErrInvalidFloatOp:
		return "InvalidFloatOp"
	case ErrInvalidRangeStep:
		return "InvalidRangeStep"
	default:
		return "UnknownCondition"
	}
}

// GuardError is the typed condition raised by a rejected operation. The
// offending operation is detected before any mutation is committed, so the
// target container is unchanged when a GuardError is returned.
type GuardError struct {
	Kind    ErrKind
	Op      string // operation that was rejected, e.g. "array.pad"
	Message string
}

func (e *GuardError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s in %s: %s", e.Kind, e.Op, e.Message)
}

// IsGuardError reports whether err is a GuardError of the given kind
func IsGuardError(err error, kind ErrKind) bool {
	ge, ok := err.(*GuardError)
	return ok && ge.Kind == kind
}

func errOverflow(op, format string, args ...interface{}) *GuardError {
	return &GuardError{Kind: ErrOverflow, Op: op, Message: fmt.Sprintf(format, args...)}
}

func errDivideByZero(op string) *GuardError {
	return &GuardError{Kind: ErrDivideByZero, Op: op, Message: "division by zero"}
}

func errInvalidFloatOp(op string, result float64) *GuardError {
	return &GuardError{Kind: ErrInvalidFloatOp, Op: op, Message: fmt.Sprintf("non-finite result %v from finite inputs", result)}
}

func errInvalidRangeStep(op string, step int64) *GuardError {
	return &GuardError{Kind: ErrInvalidRangeStep, Op: op, Message: fmt.Sprintf("invalid range step %d", step)}
}

func errSizeLimit(op string, kind Kind, size, limit int) *GuardError {
	return &GuardError{
		Kind:    ErrSizeLimit,
		Op:      op,
		Message: fmt.Sprintf("%s size %d exceeds configured limit %d", kind, size, limit),
	}
}
