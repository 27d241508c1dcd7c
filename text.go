package scriptval

import (
	"strings"
	"unicode/utf8"
)

// Text operations address Unicode code points, not bytes: position 0 is the
// first character regardless of how many bytes encode it. The string size
// ceiling is enforced against the UTF-8 byte length, so a guarded operation
// computes its prospective byte length before committing.

// firstRune returns the first code point of s, or ok=false for an empty
// string
func firstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// guardTextGrowth checks a prospective content string against the string
// ceiling
func (e *Engine) guardTextGrowth(op string, prospective string) error {
	return e.sizes.CheckGrowth(KindText, len(prospective), op)
}

// TextGet returns the character at a signed position as a one-character
// Text, or the absent-value marker when the position does not exist
func (e *Engine) TextGet(t *Text, pos int64) interface{} {
	rs := t.runes()
	offset, ok := ResolvePosition(len(rs), pos)
	if !ok {
		return Absent
	}
	return NewText(string(rs[offset]))
}

// TextSet replaces the character at a signed position with the first
// character of ch; an invalid position or empty ch is a silent no-op.
// Replacing a narrow character with a wide one grows the byte length, so
// the string ceiling is re-checked.
func (e *Engine) TextSet(t *Text, pos int64, ch string) error {
	r, ok := firstRune(ch)
	if !ok {
		return nil
	}
	rs := t.runes()
	offset, posOK := ResolvePosition(len(rs), pos)
	if !posOK {
		e.logger.DebugCat(CatSlice, "text.set: position %d outside length %d, ignored", pos, len(rs))
		return nil
	}
	old := rs[offset]
	rs[offset] = r
	prospective := string(rs)
	if len(prospective) > t.ByteLen() {
		if err := e.guardTextGrowth("text.set", prospective); err != nil {
			rs[offset] = old
			return err
		}
	}
	t.s = prospective
	return nil
}

// SubText copies count characters starting at start into a new Text,
// clamped per the shared range rules
func (e *Engine) SubText(t *Text, start, count int64) *Text {
	rs := t.runes()
	r := ResolveCount(len(rs), start, count)
	return NewText(string(rs[r.Offset:r.End()]))
}

// SubTextRange copies the characters covered by a range spec into a new
// Text; both argument forms resolve to identical semantics
func (e *Engine) SubTextRange(t *Text, spec RangeSpec) *Text {
	rs := t.runes()
	r := ResolveRange(len(rs), spec)
	return NewText(string(rs[r.Offset:r.End()]))
}

// TextCrop retains only the characters covered by a range spec, in place
func (e *Engine) TextCrop(t *Text, spec RangeSpec) {
	rs := t.runes()
	r := ResolveRange(len(rs), spec)
	t.setRunes(rs[r.Offset:r.End()])
}

// TextCropCount is TextCrop with a start+count argument form
func (e *Engine) TextCropCount(t *Text, start, count int64) {
	rs := t.runes()
	r := ResolveCount(len(rs), start, count)
	t.setRunes(rs[r.Offset:r.End()])
}

// TextTruncate drops trailing characters beyond targetLen
func (e *Engine) TextTruncate(t *Text, targetLen int64) {
	rs := t.runes()
	if targetLen < 0 {
		targetLen = 0
	}
	if targetLen >= int64(len(rs)) {
		return
	}
	t.setRunes(rs[:int(targetLen)])
}

// TextPad appends copies of the first character of filler until the
// character length reaches targetLen
func (e *Engine) TextPad(t *Text, targetLen int64, filler string) error {
	r, ok := firstRune(filler)
	if !ok {
		return nil
	}
	n := t.Len()
	if targetLen <= int64(n) {
		return nil
	}
	pad := strings.Repeat(string(r), int(targetLen)-n)
	prospective := t.s + pad
	if err := e.guardTextGrowth("text.pad", prospective); err != nil {
		return err
	}
	t.s = prospective
	return nil
}

// TextPop removes and returns the last character as a one-character Text,
// or the absent-value marker when the text is empty
func (e *Engine) TextPop(t *Text) interface{} {
	rs := t.runes()
	if len(rs) == 0 {
		return Absent
	}
	last := rs[len(rs)-1]
	t.setRunes(rs[:len(rs)-1])
	return NewText(string(last))
}

// TextPopN removes the last n characters and returns them in original order
func (e *Engine) TextPopN(t *Text, n int64) *Text {
	if n <= 0 {
		return NewText("")
	}
	rs := t.runes()
	if n > int64(len(rs)) {
		n = int64(len(rs))
	}
	cut := len(rs) - int(n)
	out := string(rs[cut:])
	t.setRunes(rs[:cut])
	return NewText(out)
}

// TextInsert inserts s at a signed character position with the
// end-if-out-of-range policy
func (e *Engine) TextInsert(t *Text, pos int64, s string) error {
	if s == "" {
		return nil
	}
	rs := t.runes()
	offset := resolveInsertPosition(len(rs), pos)
	prospective := string(rs[:offset]) + s + string(rs[offset:])
	if err := e.guardTextGrowth("text.insert", prospective); err != nil {
		return err
	}
	t.s = prospective
	return nil
}

// TextRemove removes and returns the character at a signed position, or
// the absent-value marker when the position does not exist
func (e *Engine) TextRemove(t *Text, pos int64) interface{} {
	rs := t.runes()
	offset, ok := ResolvePosition(len(rs), pos)
	if !ok {
		return Absent
	}
	removed := rs[offset]
	t.setRunes(append(rs[:offset:offset], rs[offset+1:]...))
	return NewText(string(removed))
}

// TextSplice removes the characters covered by a range spec and
// substitutes the replacement string in place
func (e *Engine) TextSplice(t *Text, spec RangeSpec, replacement string) error {
	rs := t.runes()
	return e.textSplice(t, rs, ResolveRange(len(rs), spec), replacement)
}

// TextSpliceCount is TextSplice with a start+count argument form
func (e *Engine) TextSpliceCount(t *Text, start, count int64, replacement string) error {
	rs := t.runes()
	return e.textSplice(t, rs, ResolveCount(len(rs), start, count), replacement)
}

func (e *Engine) textSplice(t *Text, rs []rune, r ResolvedRange, replacement string) error {
	prospective := string(rs[:r.Offset]) + replacement + string(rs[r.End():])
	if len(prospective) > t.ByteLen() {
		if err := e.guardTextGrowth("text.splice", prospective); err != nil {
			return err
		}
	}
	t.s = prospective
	return nil
}

// TextAppend appends s to the end of the text
func (e *Engine) TextAppend(t *Text, s string) error {
	if s == "" {
		return nil
	}
	prospective := t.s + s
	if err := e.guardTextGrowth("text.append", prospective); err != nil {
		return err
	}
	t.s = prospective
	return nil
}

// TextTrim removes leading and trailing whitespace, in place
func (e *Engine) TextTrim(t *Text) {
	t.s = strings.TrimSpace(t.s)
}

// TextIndexOf returns the character index of the first occurrence of sub
// at or after the signed position from, or -1 when sub does not occur
// there. An empty sub or a position outside the text yields -1.
func (e *Engine) TextIndexOf(t *Text, sub string, from int64) int64 {
	if sub == "" {
		return -1
	}
	rs := t.runes()
	offset := 0
	if from != 0 {
		var ok bool
		offset, ok = ResolvePosition(len(rs), from)
		if !ok {
			return -1
		}
	}
	tail := string(rs[offset:])
	byteIdx := strings.Index(tail, sub)
	if byteIdx < 0 {
		return -1
	}
	return int64(offset + utf8.RuneCountInString(tail[:byteIdx]))
}
