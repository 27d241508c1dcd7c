package scriptval

// Slice operations over arrays and blobs. Every operation resolves its
// position or range arguments through the shared resolver before touching
// data, and every operation that can grow the target runs the size guard
// against a prospective backing slice before committing it. A rejected
// growth leaves the container exactly as it was.

// isContainer reports whether v carries nested size (aliasing a container
// into a parent changes the parent's aggregate size)
func isContainer(v interface{}) bool {
	switch KindOf(v) {
	case KindArray, KindText, KindBytes:
		return true
	default:
		return false
	}
}

// guardArrayGrowth checks a prospective backing slice for an array: the
// shallow element count against the array ceiling, then the aggregate size
// of the prospective content
func (e *Engine) guardArrayGrowth(op string, prospective []interface{}) error {
	if err := e.sizes.CheckGrowth(KindArray, len(prospective), op); err != nil {
		return err
	}
	return e.sizes.CheckAggregate(&Array{items: prospective}, op)
}

// ArrayGet returns the element at a signed position, or the absent-value
// marker when the position does not exist
func (e *Engine) ArrayGet(a *Array, pos int64) interface{} {
	offset, ok := ResolvePosition(a.Len(), pos)
	if !ok {
		return Absent
	}
	return a.items[offset]
}

// ArraySet replaces the element at a signed position; an invalid position
// is a silent no-op. Storing a container re-checks the aggregate size,
// since nesting can grow the reachable structure without growing the
// shallow length.
func (e *Engine) ArraySet(a *Array, pos int64, v interface{}) error {
	offset, ok := ResolvePosition(a.Len(), pos)
	if !ok {
		e.logger.DebugCat(CatSlice, "array.set: position %d outside length %d, ignored", pos, a.Len())
		return nil
	}
	if !isContainer(v) {
		a.items[offset] = v
		return nil
	}
	old := a.items[offset]
	a.items[offset] = v
	if err := e.sizes.CheckAggregate(a, "array.set"); err != nil {
		a.items[offset] = old
		return err
	}
	return nil
}

// ArrayExtract copies the sub-sequence covered by a range spec into a new
// array. Elements are copied shallowly: nested containers stay shared.
func (e *Engine) ArrayExtract(a *Array, spec RangeSpec) *Array {
	return e.arrayExtract(a, ResolveRange(a.Len(), spec))
}

// ArrayExtractCount is ArrayExtract with a start+count argument form
func (e *Engine) ArrayExtractCount(a *Array, start, count int64) *Array {
	return e.arrayExtract(a, ResolveCount(a.Len(), start, count))
}

func (e *Engine) arrayExtract(a *Array, r ResolvedRange) *Array {
	out := make([]interface{}, r.Count)
	copy(out, a.items[r.Offset:r.End()])
	return &Array{items: out}
}

// ArrayCrop retains only the sub-sequence covered by a range spec, in place
func (e *Engine) ArrayCrop(a *Array, spec RangeSpec) {
	e.arrayCrop(a, ResolveRange(a.Len(), spec))
}

// ArrayCropCount is ArrayCrop with a start+count argument form
func (e *Engine) ArrayCropCount(a *Array, start, count int64) {
	e.arrayCrop(a, ResolveCount(a.Len(), start, count))
}

func (e *Engine) arrayCrop(a *Array, r ResolvedRange) {
	out := make([]interface{}, r.Count)
	copy(out, a.items[r.Offset:r.End()])
	a.items = out
}

// ArrayTruncate drops trailing elements beyond targetLen; a target at or
// past the current length is a no-op
func (e *Engine) ArrayTruncate(a *Array, targetLen int64) {
	if targetLen < 0 {
		targetLen = 0
	}
	if targetLen >= int64(a.Len()) {
		return
	}
	a.items = a.items[:int(targetLen)]
}

// ArrayPad appends copies of filler until the length reaches targetLen.
// A container filler is appended by reference: every padded slot aliases
// the same value.
func (e *Engine) ArrayPad(a *Array, targetLen int64, filler interface{}) error {
	if targetLen <= int64(a.Len()) {
		return nil
	}
	prospective := make([]interface{}, int(targetLen))
	copy(prospective, a.items)
	for i := a.Len(); i < int(targetLen); i++ {
		prospective[i] = filler
	}
	if err := e.guardArrayGrowth("array.pad", prospective); err != nil {
		return err
	}
	a.items = prospective
	return nil
}

// ArrayPop removes and returns the last element, or the absent-value
// marker when the array is empty
func (e *Engine) ArrayPop(a *Array) interface{} {
	n := a.Len()
	if n == 0 {
		return Absent
	}
	last := a.items[n-1]
	a.items = a.items[:n-1]
	return last
}

// ArrayPopN removes the last n elements and returns them as a new array in
// their original order. n <= 0 removes nothing; n >= len removes everything.
func (e *Engine) ArrayPopN(a *Array, n int64) *Array {
	if n <= 0 {
		return &Array{}
	}
	if n > int64(a.Len()) {
		n = int64(a.Len())
	}
	cut := a.Len() - int(n)
	out := make([]interface{}, int(n))
	copy(out, a.items[cut:])
	a.items = a.items[:cut]
	return &Array{items: out}
}

// ArrayInsert inserts v at a signed position with the end-if-out-of-range
// policy: at or past the end appends, a negative magnitude beyond the
// length inserts at the front
func (e *Engine) ArrayInsert(a *Array, pos int64, v interface{}) error {
	offset := resolveInsertPosition(a.Len(), pos)
	prospective := make([]interface{}, a.Len()+1)
	copy(prospective, a.items[:offset])
	prospective[offset] = v
	copy(prospective[offset+1:], a.items[offset:])
	if err := e.guardArrayGrowth("array.insert", prospective); err != nil {
		return err
	}
	a.items = prospective
	return nil
}

// ArrayRemove removes and returns the element at a signed position, or the
// absent-value marker when the position does not exist
func (e *Engine) ArrayRemove(a *Array, pos int64) interface{} {
	offset, ok := ResolvePosition(a.Len(), pos)
	if !ok {
		return Absent
	}
	removed := a.items[offset]
	out := make([]interface{}, a.Len()-1)
	copy(out, a.items[:offset])
	copy(out[offset:], a.items[offset+1:])
	a.items = out
	return removed
}

// ArraySplice removes the sub-sequence covered by a range spec and
// substitutes the replacement's elements in place; lengths need not match
func (e *Engine) ArraySplice(a *Array, spec RangeSpec, replacement *Array) error {
	return e.arraySplice(a, ResolveRange(a.Len(), spec), replacement)
}

// ArraySpliceCount is ArraySplice with a start+count argument form
func (e *Engine) ArraySpliceCount(a *Array, start, count int64, replacement *Array) error {
	return e.arraySplice(a, ResolveCount(a.Len(), start, count), replacement)
}

func (e *Engine) arraySplice(a *Array, r ResolvedRange, replacement *Array) error {
	newLen := a.Len() - r.Count + replacement.Len()
	prospective := make([]interface{}, newLen)
	copy(prospective, a.items[:r.Offset])
	copy(prospective[r.Offset:], replacement.items)
	copy(prospective[r.Offset+replacement.Len():], a.items[r.End():])
	if newLen > a.Len() || replacement.Len() > 0 {
		if err := e.guardArrayGrowth("array.splice", prospective); err != nil {
			return err
		}
	}
	a.items = prospective
	return nil
}

// ArrayPush appends a single element
func (e *Engine) ArrayPush(a *Array, v interface{}) error {
	prospective := make([]interface{}, a.Len()+1)
	copy(prospective, a.items)
	prospective[a.Len()] = v
	if err := e.guardArrayGrowth("array.push", prospective); err != nil {
		return err
	}
	a.items = prospective
	return nil
}

// ArrayConcat appends all of b's elements onto a. b is unchanged; shared
// container elements remain shared.
func (e *Engine) ArrayConcat(a, b *Array) error {
	if b.Len() == 0 {
		return nil
	}
	prospective := make([]interface{}, a.Len()+b.Len())
	copy(prospective, a.items)
	copy(prospective[a.Len():], b.items)
	if err := e.guardArrayGrowth("array.concat", prospective); err != nil {
		return err
	}
	a.items = prospective
	return nil
}

// Blob operations mirror the array set, with bytes as the unit. Byte values
// travel as int64; stores keep the low 8 bits, matching the truncating
// convention script integers use for byte context.

// BlobGet returns the byte at a signed position as an int64, or the
// absent-value marker when the position does not exist
func (e *Engine) BlobGet(b *Blob, pos int64) interface{} {
	offset, ok := ResolvePosition(b.Len(), pos)
	if !ok {
		return Absent
	}
	return int64(b.data[offset])
}

// BlobSet stores the low 8 bits of v at a signed position; an invalid
// position is a silent no-op
func (e *Engine) BlobSet(b *Blob, pos int64, v int64) {
	offset, ok := ResolvePosition(b.Len(), pos)
	if !ok {
		e.logger.DebugCat(CatSlice, "blob.set: position %d outside length %d, ignored", pos, b.Len())
		return
	}
	b.data[offset] = byte(v)
}

// BlobExtract copies the byte range covered by a range spec into a new blob
func (e *Engine) BlobExtract(b *Blob, spec RangeSpec) *Blob {
	r := ResolveRange(b.Len(), spec)
	return &Blob{data: append([]byte(nil), b.data[r.Offset:r.End()]...)}
}

// BlobExtractCount is BlobExtract with a start+count argument form
func (e *Engine) BlobExtractCount(b *Blob, start, count int64) *Blob {
	r := ResolveCount(b.Len(), start, count)
	return &Blob{data: append([]byte(nil), b.data[r.Offset:r.End()]...)}
}

// BlobCrop retains only the byte range covered by a range spec, in place
func (e *Engine) BlobCrop(b *Blob, spec RangeSpec) {
	r := ResolveRange(b.Len(), spec)
	b.data = append([]byte(nil), b.data[r.Offset:r.End()]...)
}

// BlobCropCount is BlobCrop with a start+count argument form
func (e *Engine) BlobCropCount(b *Blob, start, count int64) {
	r := ResolveCount(b.Len(), start, count)
	b.data = append([]byte(nil), b.data[r.Offset:r.End()]...)
}

// BlobTruncate drops trailing bytes beyond targetLen
func (e *Engine) BlobTruncate(b *Blob, targetLen int64) {
	if targetLen < 0 {
		targetLen = 0
	}
	if targetLen >= int64(b.Len()) {
		return
	}
	b.data = b.data[:int(targetLen)]
}

// BlobPad appends copies of the filler byte until the length reaches
// targetLen
func (e *Engine) BlobPad(b *Blob, targetLen int64, filler int64) error {
	if targetLen <= int64(b.Len()) {
		return nil
	}
	if err := e.sizes.CheckGrowth(KindBytes, int(targetLen), "blob.pad"); err != nil {
		return err
	}
	prospective := make([]byte, int(targetLen))
	copy(prospective, b.data)
	for i := b.Len(); i < int(targetLen); i++ {
		prospective[i] = byte(filler)
	}
	b.data = prospective
	return nil
}

// BlobPop removes and returns the last byte, or the absent-value marker
// when the blob is empty
func (e *Engine) BlobPop(b *Blob) interface{} {
	n := b.Len()
	if n == 0 {
		return Absent
	}
	last := b.data[n-1]
	b.data = b.data[:n-1]
	return int64(last)
}

// BlobPopN removes the last n bytes and returns them in original order
func (e *Engine) BlobPopN(b *Blob, n int64) *Blob {
	if n <= 0 {
		return &Blob{}
	}
	if n > int64(b.Len()) {
		n = int64(b.Len())
	}
	cut := b.Len() - int(n)
	out := append([]byte(nil), b.data[cut:]...)
	b.data = b.data[:cut]
	return &Blob{data: out}
}

// BlobInsert inserts the low 8 bits of v at a signed position with the
// end-if-out-of-range policy
func (e *Engine) BlobInsert(b *Blob, pos int64, v int64) error {
	offset := resolveInsertPosition(b.Len(), pos)
	if err := e.sizes.CheckGrowth(KindBytes, b.Len()+1, "blob.insert"); err != nil {
		return err
	}
	prospective := make([]byte, b.Len()+1)
	copy(prospective, b.data[:offset])
	prospective[offset] = byte(v)
	copy(prospective[offset+1:], b.data[offset:])
	b.data = prospective
	return nil
}

// BlobRemove removes and returns the byte at a signed position, or the
// absent-value marker when the position does not exist
func (e *Engine) BlobRemove(b *Blob, pos int64) interface{} {
	offset, ok := ResolvePosition(b.Len(), pos)
	if !ok {
		return Absent
	}
	removed := b.data[offset]
	out := make([]byte, b.Len()-1)
	copy(out, b.data[:offset])
	copy(out[offset:], b.data[offset+1:])
	b.data = out
	return int64(removed)
}

// BlobSplice removes the byte range covered by a range spec and substitutes
// the replacement's bytes in place
func (e *Engine) BlobSplice(b *Blob, spec RangeSpec, replacement *Blob) error {
	return e.blobSplice(b, ResolveRange(b.Len(), spec), replacement)
}

// BlobSpliceCount is BlobSplice with a start+count argument form
func (e *Engine) BlobSpliceCount(b *Blob, start, count int64, replacement *Blob) error {
	return e.blobSplice(b, ResolveCount(b.Len(), start, count), replacement)
}

func (e *Engine) blobSplice(b *Blob, r ResolvedRange, replacement *Blob) error {
	newLen := b.Len() - r.Count + replacement.Len()
	if newLen > b.Len() {
		if err := e.sizes.CheckGrowth(KindBytes, newLen, "blob.splice"); err != nil {
			return err
		}
	}
	prospective := make([]byte, newLen)
	copy(prospective, b.data[:r.Offset])
	copy(prospective[r.Offset:], replacement.data)
	copy(prospective[r.Offset+replacement.Len():], b.data[r.End():])
	b.data = prospective
	return nil
}

// BlobPush appends a single byte
func (e *Engine) BlobPush(b *Blob, v int64) error {
	if err := e.sizes.CheckGrowth(KindBytes, b.Len()+1, "blob.push"); err != nil {
		return err
	}
	b.data = append(b.data, byte(v))
	return nil
}

// BlobConcat appends all of other's bytes onto b
func (e *Engine) BlobConcat(b, other *Blob) error {
	if other.Len() == 0 {
		return nil
	}
	if err := e.sizes.CheckGrowth(KindBytes, b.Len()+other.Len(), "blob.concat"); err != nil {
		return err
	}
	prospective := make([]byte, b.Len()+other.Len())
	copy(prospective, b.data)
	copy(prospective[b.Len():], other.data)
	b.data = prospective
	return nil
}
