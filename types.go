package scriptval

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Values in scriptval are plain Go values: int64, float64, bool, the
// container kinds below, and AbsentValue. Containers are addressed through
// pointers, so an element that is itself a container may be aliased by
// several parents; mutations through one alias are visible through all.

// Kind identifies the runtime shape of a value
type Kind int

const (
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindBytes
	KindArray
	KindOpaque // host-defined value the core does not interpret
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindArray:
		return "array"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// KindFromString converts a kind name back to a Kind
func KindFromString(s string) Kind {
	switch strings.ToLower(s) {
	case "absent":
		return KindAbsent
	case "bool":
		return KindBool
	case "int":
		return KindInt
	case "float":
		return KindFloat
	case "text":
		return KindText
	case "bytes":
		return KindBytes
	case "array":
		return KindArray
	default:
		return KindOpaque
	}
}

// AbsentValue is the "no value" marker returned by accessors for positions
// that do not exist. It is distinct from nil, zero, and the empty string so
// that exploratory access patterns can tell "absent" apart from stored data.
type AbsentValue struct{}

// String returns a string representation for debugging
func (AbsentValue) String() string { return "(absent)" }

// Absent is the canonical absent-value marker
var Absent = AbsentValue{}

// IsAbsent reports whether v is the absent-value marker
func IsAbsent(v interface{}) bool {
	_, ok := v.(AbsentValue)
	return ok
}

// KindOf classifies an arbitrary value into the closed kind set
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case AbsentValue, nil:
		return KindAbsent
	case bool:
		return KindBool
	case int64, int:
		return KindInt
	case float64:
		return KindFloat
	case *Text:
		return KindText
	case *Blob:
		return KindBytes
	case *Array:
		return KindArray
	default:
		return KindOpaque
	}
}

// Array is a growable, ordered sequence of values. Arrays are mutated in
// place; sharing an *Array between parents is shared ownership, not a copy.
type Array struct {
	items []interface{}
}

// NewArray creates a new Array from the given items
func NewArray(items ...interface{}) *Array {
	a := &Array{items: make([]interface{}, len(items))}
	copy(a.items, items)
	return a
}

// Len returns the number of elements in the array
func (a *Array) Len() int {
	return len(a.items)
}

// Items returns the underlying items slice (not a copy)
func (a *Array) Items() []interface{} {
	return a.items
}

// Get returns the item at the given offset, or nil if out of bounds
func (a *Array) Get(offset int) interface{} {
	if offset < 0 || offset >= len(a.items) {
		return nil
	}
	return a.items[offset]
}

// String returns a string representation for debugging
func (a *Array) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, item := range a.items {
		if i > 0 {
			b.WriteString(", ")
		}
		if item == interface{}(a) {
			b.WriteString("[...]")
			continue
		}
		fmt.Fprintf(&b, "%v", item)
	}
	b.WriteString("]")
	return b.String()
}

// Text is a UTF-8 string addressed by Unicode code point. The byte length
// may exceed the character length; size limits are enforced in bytes while
// positions and ranges count characters.
type Text struct {
	s string
}

// NewText creates a new Text from a Go string
func NewText(s string) *Text {
	return &Text{s: s}
}

// Len returns the length in Unicode code points
func (t *Text) Len() int {
	return utf8.RuneCountInString(t.s)
}

// ByteLen returns the length in bytes
func (t *Text) ByteLen() int {
	return len(t.s)
}

// String returns the text content
func (t *Text) String() string {
	return t.s
}

// runes returns the code-point view used by indexed operations
func (t *Text) runes() []rune {
	return []rune(t.s)
}

// setRunes replaces the content from a code-point slice
func (t *Text) setRunes(rs []rune) {
	t.s = string(rs)
}

// Blob is a raw byte buffer addressed by byte position
type Blob struct {
	data []byte
}

// NewBlob creates a new Blob from the given bytes
func NewBlob(data []byte) *Blob {
	b := &Blob{data: make([]byte, len(data))}
	copy(b.data, data)
	return b
}

// Len returns the number of bytes in the blob
func (b *Blob) Len() int {
	return len(b.data)
}

// Data returns the underlying byte slice (not a copy)
func (b *Blob) Data() []byte {
	return b.data
}

// String returns a string representation for debugging
func (b *Blob) String() string {
	return fmt.Sprintf("(blob:%d)", len(b.data))
}
