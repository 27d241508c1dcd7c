package scriptval

// Index resolution is shared by every addressable kind: arrays (elements),
// text (characters), blobs (bytes), and integers viewed as bit fields.
// Single positions use the signed convention: non-negative counts from the
// front, negative counts from the end (-1 is the last unit). Range endpoints
// are never sign-interpreted; they describe an absolute extent and are
// clamped into bounds instead of erroring. The asymmetry is deliberate: a
// range names an extent, a position names an offset from either end.

// ResolvedRange is a validated (offset, count) pair guaranteed to satisfy
// offset+count <= length of the container it was resolved against.
// A count of 0 is a valid, meaningful result ("no elements").
type ResolvedRange struct {
	Offset int
	Count  int
}

// End returns the exclusive end offset of the range
func (r ResolvedRange) End() int {
	return r.Offset + r.Count
}

// ResolvePosition normalizes a signed position against a length. The result
// is a valid offset strictly below length, or ok=false when the position
// does not address an existing unit. Callers decide whether ok=false means
// "no-op" or "absent value"; it is never an error.
func ResolvePosition(length int, pos int64) (int, bool) {
	if pos >= 0 {
		if pos >= int64(length) {
			return 0, false
		}
		return int(pos), true
	}
	if pos < -int64(length) {
		return 0, false
	}
	return length + int(pos), true
}

// RangeSpec describes a start..end extent. End is exclusive unless Inclusive
// is set. Negative endpoints are not counted from the end; they simply clamp.
type RangeSpec struct {
	Start     int64
	End       int64
	Inclusive bool
}

// ResolveRange clamps a range spec into [0, length]. Out-of-range endpoints
// clamp rather than error, so range operations are total over any length.
func ResolveRange(length int, spec RangeSpec) ResolvedRange {
	start := spec.Start
	if start < 0 {
		start = 0
	}
	if start >= int64(length) {
		return ResolvedRange{Offset: length, Count: 0}
	}

	end := spec.End
	if end >= int64(length) {
		end = int64(length)
	} else if spec.Inclusive {
		end++
	}
	if end < start {
		return ResolvedRange{Offset: int(start), Count: 0}
	}
	return ResolvedRange{Offset: int(start), Count: int(end - start)}
}

// ResolveCount clamps a start+count spec into [0, length]. A count <= 0 is
// empty; a count extending past the length means "to end".
func ResolveCount(length int, start, count int64) ResolvedRange {
	if start < 0 {
		start = 0
	}
	if start >= int64(length) {
		return ResolvedRange{Offset: length, Count: 0}
	}
	if count <= 0 {
		return ResolvedRange{Offset: int(start), Count: 0}
	}
	remaining := int64(length) - start
	if count > remaining {
		count = remaining
	}
	return ResolvedRange{Offset: int(start), Count: int(count)}
}

// resolveInsertPosition maps a signed position onto [0, length] with the
// end-if-out-of-range policy used by insert: at or past the end appends,
// a negative magnitude beyond the length inserts at the front.
func resolveInsertPosition(length int, pos int64) int {
	if pos >= int64(length) {
		return length
	}
	if pos >= 0 {
		return int(pos)
	}
	if pos < -int64(length) {
		return 0
	}
	return length + int(pos)
}

// StepRange describes a stepped iteration over positions. Unlike plain
// ranges, a zero or sign-inconsistent step is a hard error even in
// unchecked mode, since it would otherwise iterate forever.
type StepRange struct {
	Start     int64
	End       int64
	Step      int64
	Inclusive bool
}

// StepIter walks a StepRange. Create one with NewStepIter.
type StepIter struct {
	cur       int64
	end       int64
	step      int64
	inclusive bool
	done      bool
}

// NewStepIter validates the step and returns an iterator over the range.
// op names the requesting operation for error reporting.
func NewStepIter(r StepRange, op string) (*StepIter, error) {
	if r.Step == 0 {
		return nil, errInvalidRangeStep(op, r.Step)
	}
	if r.Step > 0 && r.End < r.Start {
		return nil, errInvalidRangeStep(op, r.Step)
	}
	if r.Step < 0 && r.End > r.Start {
		return nil, errInvalidRangeStep(op, r.Step)
	}
	return &StepIter{cur: r.Start, end: r.End, step: r.Step, inclusive: r.Inclusive}, nil
}

// Next returns the next position and whether one was produced
func (it *StepIter) Next() (int64, bool) {
	if it.done {
		return 0, false
	}
	inRange := false
	if it.step > 0 {
		inRange = it.cur < it.end || (it.inclusive && it.cur == it.end)
	} else {
		inRange = it.cur > it.end || (it.inclusive && it.cur == it.end)
	}
	if !inRange {
		it.done = true
		return 0, false
	}
	pos := it.cur
	next := it.cur + it.step
	// Wraparound past the int64 boundary ends the iteration
	if it.step > 0 && next < it.cur {
		it.done = true
	} else if it.step < 0 && next > it.cur {
		it.done = true
	} else {
		it.cur = next
	}
	return pos, true
}
