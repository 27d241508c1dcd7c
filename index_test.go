package scriptval

import "testing"

func TestResolvePositionProperties(t *testing.T) {
	// For every length and every in-range signed position, the resolved
	// offset is valid and follows the from-front/from-end convention.
	for length := 0; length <= 6; length++ {
		for pos := int64(-int64(length)); pos < int64(length); pos++ {
			offset, ok := ResolvePosition(length, pos)
			if !ok {
				t.Errorf("len=%d pos=%d: expected ok", length, pos)
				continue
			}
			if offset < 0 || offset >= length {
				t.Errorf("len=%d pos=%d: offset %d out of bounds", length, pos, offset)
			}
			if pos >= 0 && offset != int(pos) {
				t.Errorf("len=%d pos=%d: expected offset %d, got %d", length, pos, pos, offset)
			}
			if pos < 0 && offset != length+int(pos) {
				t.Errorf("len=%d pos=%d: expected offset %d, got %d", length, pos, length+int(pos), offset)
			}
		}
	}
}

func TestResolvePositionOutOfBounds(t *testing.T) {
	for length := 0; length <= 4; length++ {
		for _, pos := range []int64{int64(length), int64(length) + 1, -int64(length) - 1, 1 << 40, -(1 << 40)} {
			if _, ok := ResolvePosition(length, pos); ok {
				t.Errorf("len=%d pos=%d: expected out of bounds", length, pos)
			}
		}
	}
}

func TestResolveRangeClamping(t *testing.T) {
	r := ResolveRange(10, RangeSpec{Start: 2, End: 5})
	if r.Offset != 2 || r.Count != 3 {
		t.Errorf("2..5 over 10: got %+v", r)
	}

	r = ResolveRange(10, RangeSpec{Start: 2, End: 5, Inclusive: true})
	if r.Offset != 2 || r.Count != 4 {
		t.Errorf("2..=5 over 10: got %+v", r)
	}

	// Negative start clamps to 0, it does not count from the end
	r = ResolveRange(10, RangeSpec{Start: -3, End: 4})
	if r.Offset != 0 || r.Count != 4 {
		t.Errorf("-3..4 over 10: got %+v", r)
	}

	// End beyond the length clamps to the length
	r = ResolveRange(10, RangeSpec{Start: 7, End: 99})
	if r.Offset != 7 || r.Count != 3 {
		t.Errorf("7..99 over 10: got %+v", r)
	}

	// Start at or past the length is an empty range at the length
	r = ResolveRange(10, RangeSpec{Start: 10, End: 20})
	if r.Offset != 10 || r.Count != 0 {
		t.Errorf("10..20 over 10: got %+v", r)
	}

	// Inverted extent is empty at the start
	r = ResolveRange(10, RangeSpec{Start: 6, End: 2})
	if r.Offset != 6 || r.Count != 0 {
		t.Errorf("6..2 over 10: got %+v", r)
	}

	// Inclusive end at the last position reaches the length exactly
	r = ResolveRange(10, RangeSpec{Start: 0, End: 9, Inclusive: true})
	if r.Offset != 0 || r.Count != 10 {
		t.Errorf("0..=9 over 10: got %+v", r)
	}
}

func TestResolveRangeNeverExceedsLength(t *testing.T) {
	specs := []RangeSpec{
		{Start: -5, End: 100}, {Start: 0, End: 0}, {Start: 3, End: 3, Inclusive: true},
		{Start: 9, End: 9}, {Start: 0, End: 1 << 60, Inclusive: true}, {Start: 1 << 60, End: 1<<60 + 5},
	}
	for length := 0; length <= 10; length++ {
		for _, spec := range specs {
			r := ResolveRange(length, spec)
			if r.Offset+r.Count > length {
				t.Errorf("len=%d spec=%+v: offset+count %d exceeds length", length, spec, r.Offset+r.Count)
			}
		}
	}
}

func TestResolveCount(t *testing.T) {
	r := ResolveCount(10, 8, 5)
	if r.Offset != 8 || r.Count != 2 {
		t.Errorf("start=8 count=5 over 10: got %+v", r)
	}

	r = ResolveCount(10, 3, 0)
	if r.Offset != 3 || r.Count != 0 {
		t.Errorf("count=0: got %+v", r)
	}

	r = ResolveCount(10, 3, -7)
	if r.Offset != 3 || r.Count != 0 {
		t.Errorf("negative count: got %+v", r)
	}

	r = ResolveCount(10, -4, 2)
	if r.Offset != 0 || r.Count != 2 {
		t.Errorf("negative start clamps to 0: got %+v", r)
	}

	r = ResolveCount(10, 15, 2)
	if r.Offset != 10 || r.Count != 0 {
		t.Errorf("start past length: got %+v", r)
	}
}

func TestResolveInsertPosition(t *testing.T) {
	if got := resolveInsertPosition(3, 0); got != 0 {
		t.Errorf("insert at 0: got %d", got)
	}
	if got := resolveInsertPosition(3, 3); got != 3 {
		t.Errorf("insert at len: got %d", got)
	}
	if got := resolveInsertPosition(3, 999); got != 3 {
		t.Errorf("insert past len appends: got %d", got)
	}
	if got := resolveInsertPosition(3, -1); got != 2 {
		t.Errorf("insert at -1: got %d", got)
	}
	if got := resolveInsertPosition(3, -999); got != 0 {
		t.Errorf("insert far negative goes to front: got %d", got)
	}
}

func TestStepIter(t *testing.T) {
	it, err := NewStepIter(StepRange{Start: 0, End: 6, Step: 2}, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []int64
	for {
		pos, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, pos)
	}
	want := []int64{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
}

func TestStepIterInclusiveAndDescending(t *testing.T) {
	it, err := NewStepIter(StepRange{Start: 0, End: 6, Step: 3, Inclusive: true}, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []int64
	for {
		pos, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, pos)
	}
	if len(got) != 3 || got[2] != 6 {
		t.Errorf("inclusive 0..=6 step 3: got %v", got)
	}

	it, err = NewStepIter(StepRange{Start: 5, End: 0, Step: -2}, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got = nil
	for {
		pos, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, pos)
	}
	if len(got) != 3 || got[0] != 5 || got[2] != 1 {
		t.Errorf("descending 5..0 step -2: got %v", got)
	}
}

func TestStepIterInvalidStep(t *testing.T) {
	if _, err := NewStepIter(StepRange{Start: 0, End: 5, Step: 0}, "test"); !IsGuardError(err, ErrInvalidRangeStep) {
		t.Errorf("zero step: expected InvalidRangeStep, got %v", err)
	}
	if _, err := NewStepIter(StepRange{Start: 0, End: 5, Step: -1}, "test"); !IsGuardError(err, ErrInvalidRangeStep) {
		t.Errorf("sign-inconsistent step: expected InvalidRangeStep, got %v", err)
	}
	if _, err := NewStepIter(StepRange{Start: 5, End: 0, Step: 1}, "test"); !IsGuardError(err, ErrInvalidRangeStep) {
		t.Errorf("sign-inconsistent step: expected InvalidRangeStep, got %v", err)
	}
}
