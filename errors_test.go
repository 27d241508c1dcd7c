package scriptval

import (
	"errors"
	"strings"
	"testing"
)

func TestGuardErrorFormatting(t *testing.T) {
	err := errSizeLimit("array.pad", KindArray, 600, 500)
	msg := err.Error()
	if !strings.Contains(msg, "SizeLimitExceeded") || !strings.Contains(msg, "array.pad") {
		t.Errorf("size limit message: got %q", msg)
	}
	if !strings.Contains(msg, "600") || !strings.Contains(msg, "500") {
		t.Errorf("size limit message should carry sizes: got %q", msg)
	}

	err = errDivideByZero("div")
	if err.Error() != "DivideByZero in div: division by zero" {
		t.Errorf("divide message: got %q", err.Error())
	}

	bare := &GuardError{Kind: ErrOverflow, Message: "boom"}
	if bare.Error() != "ArithOverflow: boom" {
		t.Errorf("op-less message: got %q", bare.Error())
	}
}

func TestIsGuardError(t *testing.T) {
	err := errOverflow("add", "%d + %d", 1, 2)
	if !IsGuardError(err, ErrOverflow) {
		t.Errorf("expected overflow kind to match")
	}
	if IsGuardError(err, ErrDivideByZero) {
		t.Errorf("kinds should not cross-match")
	}
	if IsGuardError(nil, ErrOverflow) {
		t.Errorf("nil should not match")
	}
	if IsGuardError(errors.New("plain"), ErrOverflow) {
		t.Errorf("foreign errors should not match")
	}
}

func TestErrKindNames(t *testing.T) {
	cases := map[ErrKind]string{
		ErrSizeLimit:        "SizeLimitExceeded",
		ErrOverflow:         "ArithOverflow",
		ErrDivideByZero:     "DivideByZero",
		ErrInvalidFloatOp:   "InvalidFloatOp",
		ErrInvalidRangeStep: "InvalidRangeStep",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("%d: expected %q, got %q", kind, want, kind.String())
		}
	}
}
