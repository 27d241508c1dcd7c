package scriptval

import "testing"

func intItems(a *Array) []int64 {
	out := make([]int64, a.Len())
	for i, v := range a.Items() {
		out[i] = v.(int64)
	}
	return out
}

func wantInts(t *testing.T, label string, a *Array, want ...int64) {
	t.Helper()
	got := intItems(a)
	if len(got) != len(want) {
		t.Errorf("%s: expected %v, got %v", label, want, got)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: expected %v, got %v", label, want, got)
			return
		}
	}
}

func TestArrayGetSet(t *testing.T) {
	e := New(nil)
	a := NewArray(int64(10), int64(20), int64(30))

	if got := e.ArrayGet(a, 1); got != int64(20) {
		t.Errorf("get 1: got %v", got)
	}
	if got := e.ArrayGet(a, -1); got != int64(30) {
		t.Errorf("get -1: got %v", got)
	}
	if got := e.ArrayGet(a, 3); !IsAbsent(got) {
		t.Errorf("get 3: expected absent, got %v", got)
	}
	if got := e.ArrayGet(a, -4); !IsAbsent(got) {
		t.Errorf("get -4: expected absent, got %v", got)
	}

	if err := e.ArraySet(a, -1, int64(99)); err != nil {
		t.Fatalf("set -1: %v", err)
	}
	// An invalid position absorbs silently
	if err := e.ArraySet(a, 50, int64(0)); err != nil {
		t.Fatalf("set 50: %v", err)
	}
	wantInts(t, "after sets", a, 10, 20, 99)
}

func TestArrayInsertClamping(t *testing.T) {
	e := New(nil)
	a := NewArray(int64(2), int64(3))

	if err := e.ArrayInsert(a, 0, int64(1)); err != nil {
		t.Fatalf("insert front: %v", err)
	}
	if err := e.ArrayInsert(a, 999, int64(4)); err != nil {
		t.Fatalf("insert past end: %v", err)
	}
	if err := e.ArrayInsert(a, -999, int64(0)); err != nil {
		t.Fatalf("insert far negative: %v", err)
	}
	wantInts(t, "clamped inserts", a, 0, 1, 2, 3, 4)
}

func TestArrayExtractAndCrop(t *testing.T) {
	e := New(nil)
	a := NewArray(int64(0), int64(1), int64(2), int64(3), int64(4))

	sub := e.ArrayExtract(a, RangeSpec{Start: 1, End: 3, Inclusive: true})
	wantInts(t, "extract 1..=3", sub, 1, 2, 3)
	wantInts(t, "source unchanged", a, 0, 1, 2, 3, 4)

	sub = e.ArrayExtractCount(a, 3, 99)
	wantInts(t, "extract count clamps", sub, 3, 4)

	// Extracted containers stay shared with the source
	inner := NewArray(int64(7))
	b := NewArray(inner, int64(1))
	sub = e.ArrayExtractCount(b, 0, 1)
	if sub.Get(0) != interface{}(inner) {
		t.Errorf("extract copies shallowly: expected shared inner array")
	}

	e.ArrayCrop(a, RangeSpec{Start: 1, End: 4})
	wantInts(t, "crop 1..4", a, 1, 2, 3)
	// Cropping to an identical extent changes nothing
	e.ArrayCropCount(a, 0, 3)
	wantInts(t, "crop idempotent", a, 1, 2, 3)
	e.ArrayCrop(a, RangeSpec{Start: 5, End: 9})
	wantInts(t, "crop out of range empties", a)
}

func TestArrayTruncatePad(t *testing.T) {
	e := New(nil)
	a := NewArray(int64(1), int64(2), int64(3))

	e.ArrayTruncate(a, 5)
	wantInts(t, "truncate beyond length", a, 1, 2, 3)
	e.ArrayTruncate(a, 2)
	wantInts(t, "truncate to 2", a, 1, 2)
	e.ArrayTruncate(a, -1)
	wantInts(t, "negative target empties", a)

	if err := e.ArrayPad(a, 3, int64(0)); err != nil {
		t.Fatalf("pad: %v", err)
	}
	wantInts(t, "pad to 3", a, 0, 0, 0)
	if err := e.ArrayPad(a, 2, int64(9)); err != nil {
		t.Fatalf("pad shorter: %v", err)
	}
	wantInts(t, "pad to shorter target is a no-op", a, 0, 0, 0)

	// Container filler pads by reference
	inner := NewArray()
	b := NewArray()
	if err := e.ArrayPad(b, 2, inner); err != nil {
		t.Fatalf("pad with container: %v", err)
	}
	if b.Get(0) != interface{}(inner) || b.Get(1) != interface{}(inner) {
		t.Errorf("container filler should alias the same value")
	}
}

func TestArrayPopRemove(t *testing.T) {
	e := New(nil)
	a := NewArray(int64(1), int64(2), int64(3), int64(4))

	if got := e.ArrayPop(a); got != int64(4) {
		t.Errorf("pop: got %v", got)
	}
	out := e.ArrayPopN(a, 2)
	wantInts(t, "popn result keeps order", out, 2, 3)
	wantInts(t, "after popn", a, 1)

	out = e.ArrayPopN(a, 99)
	wantInts(t, "popn past length takes all", out, 1)
	if got := e.ArrayPop(a); !IsAbsent(got) {
		t.Errorf("pop empty: expected absent, got %v", got)
	}

	b := NewArray(int64(5), int64(6), int64(7))
	if got := e.ArrayRemove(b, -2); got != int64(6) {
		t.Errorf("remove -2: got %v", got)
	}
	wantInts(t, "after remove", b, 5, 7)
	if got := e.ArrayRemove(b, 9); !IsAbsent(got) {
		t.Errorf("remove out of range: expected absent, got %v", got)
	}
	wantInts(t, "remove out of range is a no-op", b, 5, 7)
}

func TestArraySplice(t *testing.T) {
	e := New(nil)
	a := NewArray(int64(0), int64(1), int64(2), int64(3), int64(4))

	if err := e.ArraySplice(a, RangeSpec{Start: 1, End: 4}, NewArray(int64(9))); err != nil {
		t.Fatalf("splice: %v", err)
	}
	wantInts(t, "shrinking splice", a, 0, 9, 4)

	if err := e.ArraySpliceCount(a, 1, 1, NewArray(int64(7), int64(8))); err != nil {
		t.Fatalf("splice count: %v", err)
	}
	wantInts(t, "growing splice", a, 0, 7, 8, 4)

	// Empty replacement over an empty extent changes nothing
	if err := e.ArraySplice(a, RangeSpec{Start: 2, End: 2}, NewArray()); err != nil {
		t.Fatalf("empty splice: %v", err)
	}
	wantInts(t, "empty splice", a, 0, 7, 8, 4)
}

func TestArrayExtractSpliceRoundTrip(t *testing.T) {
	e := New(nil)
	a := NewArray(int64(0), int64(1), int64(2), int64(3), int64(4))
	spec := RangeSpec{Start: 1, End: 3, Inclusive: true}

	// Splicing an extracted range back over itself restores the original
	sub := e.ArrayExtract(a, spec)
	if err := e.ArraySplice(a, spec, sub); err != nil {
		t.Fatalf("splice back: %v", err)
	}
	wantInts(t, "extract/splice round trip", a, 0, 1, 2, 3, 4)
}

func TestArrayPushConcat(t *testing.T) {
	e := New(nil)
	a := NewArray(int64(1))
	if err := e.ArrayPush(a, int64(2)); err != nil {
		t.Fatalf("push: %v", err)
	}
	b := NewArray(int64(3), int64(4))
	if err := e.ArrayConcat(a, b); err != nil {
		t.Fatalf("concat: %v", err)
	}
	wantInts(t, "push+concat", a, 1, 2, 3, 4)
	wantInts(t, "concat source unchanged", b, 3, 4)
}

func TestArrayLimitRejectionLeavesTargetUnchanged(t *testing.T) {
	config := DefaultConfig()
	config.Limits.MaxArraySize = 500
	e := New(config)

	a := NewArray()
	if err := e.ArrayPad(a, 500, int64(0)); err != nil {
		t.Fatalf("pad to limit: %v", err)
	}
	if err := e.ArrayPush(a, int64(1)); !IsGuardError(err, ErrSizeLimit) {
		t.Errorf("push past limit: expected SizeLimitExceeded, got %v", err)
	}
	if a.Len() != 500 {
		t.Errorf("rejected push changed length: %d", a.Len())
	}
	if err := e.ArrayPad(a, 600, int64(0)); !IsGuardError(err, ErrSizeLimit) {
		t.Errorf("pad past limit: expected SizeLimitExceeded, got %v", err)
	}
	if a.Len() != 500 {
		t.Errorf("rejected pad changed length: %d", a.Len())
	}
}

func TestBlobOperations(t *testing.T) {
	e := New(nil)
	b := NewBlob([]byte{1, 2, 3, 4})

	if got := e.BlobGet(b, -1); got != int64(4) {
		t.Errorf("blob get -1: got %v", got)
	}
	if got := e.BlobGet(b, 4); !IsAbsent(got) {
		t.Errorf("blob get 4: expected absent, got %v", got)
	}

	// Stores keep the low 8 bits
	e.BlobSet(b, 0, 0x1FF)
	if b.Data()[0] != 0xFF {
		t.Errorf("blob set truncates to a byte: got %#x", b.Data()[0])
	}
	e.BlobSet(b, 99, 7) // silent no-op
	if b.Len() != 4 {
		t.Errorf("out-of-range blob set changed length: %d", b.Len())
	}

	sub := e.BlobExtract(b, RangeSpec{Start: 1, End: 2, Inclusive: true})
	if sub.Len() != 2 || sub.Data()[0] != 2 || sub.Data()[1] != 3 {
		t.Errorf("blob extract: got %v", sub.Data())
	}

	if err := e.BlobInsert(b, 999, 9); err != nil {
		t.Fatalf("blob insert: %v", err)
	}
	if b.Len() != 5 || b.Data()[4] != 9 {
		t.Errorf("blob insert past end appends: got %v", b.Data())
	}

	if got := e.BlobRemove(b, 0); got != int64(0xFF) {
		t.Errorf("blob remove: got %v", got)
	}
	if got := e.BlobPop(b); got != int64(9) {
		t.Errorf("blob pop: got %v", got)
	}

	if err := e.BlobSpliceCount(b, 0, 2, NewBlob([]byte{8})); err != nil {
		t.Fatalf("blob splice: %v", err)
	}
	if b.Len() != 2 || b.Data()[0] != 8 || b.Data()[1] != 4 {
		t.Errorf("blob splice: got %v", b.Data())
	}

	e.BlobCropCount(b, 0, 1)
	if b.Len() != 1 || b.Data()[0] != 8 {
		t.Errorf("blob crop: got %v", b.Data())
	}
}

func TestBlobLimit(t *testing.T) {
	config := DefaultConfig()
	config.Limits.MaxBlobSize = 4
	e := New(config)

	b := NewBlob([]byte{1, 2, 3, 4})
	if err := e.BlobPush(b, 5); !IsGuardError(err, ErrSizeLimit) {
		t.Errorf("blob push past limit: expected SizeLimitExceeded, got %v", err)
	}
	if b.Len() != 4 {
		t.Errorf("rejected push changed length: %d", b.Len())
	}
	if err := e.BlobConcat(b, NewBlob([]byte{9})); !IsGuardError(err, ErrSizeLimit) {
		t.Errorf("blob concat past limit: expected SizeLimitExceeded, got %v", err)
	}
	if err := e.BlobSpliceCount(b, 0, 1, NewBlob([]byte{7})); err != nil {
		t.Errorf("same-length blob splice under limit: %v", err)
	}
}
