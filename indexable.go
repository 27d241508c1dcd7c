package scriptval

// Indexable is the capability an evaluator dispatches single-position
// access through. The built-in kinds implement it over the shared resolver;
// host-defined types can implement it to participate in the same contract.
// GetIndex reports ok=false (and SetIndex reports false) for a position
// that does not exist, mirroring the silent-absorb convention.
//
// SetIndex is the growth-free slot store; guarded mutation (inserts,
// splices, byte-length-changing character stores) goes through the Engine
// operations.
type Indexable interface {
	IndexLen() int
	GetIndex(pos int64) (interface{}, bool)
	SetIndex(pos int64, v interface{}) bool
}

// IndexLen returns the element count
func (a *Array) IndexLen() int { return a.Len() }

// GetIndex returns the element at a signed position
func (a *Array) GetIndex(pos int64) (interface{}, bool) {
	offset, ok := ResolvePosition(a.Len(), pos)
	if !ok {
		return Absent, false
	}
	return a.items[offset], true
}

// SetIndex replaces the element at a signed position
func (a *Array) SetIndex(pos int64, v interface{}) bool {
	offset, ok := ResolvePosition(a.Len(), pos)
	if !ok {
		return false
	}
	a.items[offset] = v
	return true
}

// IndexLen returns the character count
func (t *Text) IndexLen() int { return t.Len() }

// GetIndex returns the character at a signed position as a one-character Text
func (t *Text) GetIndex(pos int64) (interface{}, bool) {
	rs := t.runes()
	offset, ok := ResolvePosition(len(rs), pos)
	if !ok {
		return Absent, false
	}
	return NewText(string(rs[offset])), true
}

// SetIndex replaces the character at a signed position with the first
// character of a Text or string value
func (t *Text) SetIndex(pos int64, v interface{}) bool {
	var ch string
	switch tv := v.(type) {
	case *Text:
		ch = tv.String()
	case string:
		ch = tv
	default:
		return false
	}
	r, ok := firstRune(ch)
	if !ok {
		return false
	}
	rs := t.runes()
	offset, posOK := ResolvePosition(len(rs), pos)
	if !posOK {
		return false
	}
	rs[offset] = r
	t.setRunes(rs)
	return true
}

// IndexLen returns the byte count
func (b *Blob) IndexLen() int { return b.Len() }

// GetIndex returns the byte at a signed position as an int64
func (b *Blob) GetIndex(pos int64) (interface{}, bool) {
	offset, ok := ResolvePosition(b.Len(), pos)
	if !ok {
		return Absent, false
	}
	return int64(b.data[offset]), true
}

// SetIndex stores the low 8 bits of an integer value at a signed position
func (b *Blob) SetIndex(pos int64, v interface{}) bool {
	var iv int64
	switch tv := v.(type) {
	case int64:
		iv = tv
	case int:
		iv = int64(tv)
	default:
		return false
	}
	offset, ok := ResolvePosition(b.Len(), pos)
	if !ok {
		return false
	}
	b.data[offset] = byte(iv)
	return true
}
