package scriptval

// Bit-field access views an integer at the configured width as an ordered
// sequence of bits, offset 0 at the least-significant bit. Single positions
// follow the shared signed convention (-1 addresses the most-significant
// bit); range forms clamp and never fail. Extraction and insertion are
// always oriented toward the LSB: bit 0 of an extracted value corresponds
// to the resolved start offset.

// bitMask returns a mask of count low bits
func bitMask(count int) uint64 {
	if count >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(count)) - 1
}

// bitPattern returns the value confined to the configured width
func (e *Engine) bitPattern(value int64) uint64 {
	uv := uint64(value)
	if e.config.IntWidth == 32 {
		uv &= bitMask(32)
	}
	return uv
}

// fromBitPattern converts a width-confined pattern back to a signed value,
// sign-extending in 32-bit mode
func (e *Engine) fromBitPattern(uv uint64) int64 {
	if e.config.IntWidth == 32 {
		return int64(int32(uint32(uv)))
	}
	return int64(uv)
}

// GetBit returns the bit at a signed position. A position outside the
// configured width yields ok=false, never an error.
func (e *Engine) GetBit(value int64, pos int64) (bool, bool) {
	offset, ok := ResolvePosition(e.config.IntWidth, pos)
	if !ok {
		e.logger.DebugCat(CatBits, "get_bit: position %d outside width %d", pos, e.config.IntWidth)
		return false, false
	}
	return (e.bitPattern(value)>>uint(offset))&1 == 1, true
}

// SetBit returns value with the bit at a signed position set or cleared.
// A position outside the configured width is a no-op.
func (e *Engine) SetBit(value int64, pos int64, on bool) int64 {
	offset, ok := ResolvePosition(e.config.IntWidth, pos)
	if !ok {
		e.logger.DebugCat(CatBits, "set_bit: position %d outside width %d", pos, e.config.IntWidth)
		return value
	}
	uv := e.bitPattern(value)
	if on {
		uv |= uint64(1) << uint(offset)
	} else {
		uv &^= uint64(1) << uint(offset)
	}
	return e.fromBitPattern(uv)
}

// GetBits extracts the bits covered by a range spec, shifted down so the
// resolved start offset becomes bit 0 of the result
func (e *Engine) GetBits(value int64, spec RangeSpec) int64 {
	return e.getBits(value, ResolveRange(e.config.IntWidth, spec))
}

// GetBitsCount extracts count bits starting at start, clamped per the
// shared range rules
func (e *Engine) GetBitsCount(value int64, start, count int64) int64 {
	return e.getBits(value, ResolveCount(e.config.IntWidth, start, count))
}

func (e *Engine) getBits(value int64, r ResolvedRange) int64 {
	if r.Count == 0 {
		return 0
	}
	return int64((e.bitPattern(value) >> uint(r.Offset)) & bitMask(r.Count))
}

// SetBits returns value with the bits covered by a range spec replaced by
// the low bits of newBits
func (e *Engine) SetBits(value int64, spec RangeSpec, newBits int64) int64 {
	return e.setBits(value, ResolveRange(e.config.IntWidth, spec), newBits)
}

// SetBitsCount replaces count bits starting at start with the low bits of
// newBits, clamped per the shared range rules
func (e *Engine) SetBitsCount(value int64, start, count, newBits int64) int64 {
	return e.setBits(value, ResolveCount(e.config.IntWidth, start, count), newBits)
}

func (e *Engine) setBits(value int64, r ResolvedRange, newBits int64) int64 {
	if r.Count == 0 {
		return value
	}
	m := bitMask(r.Count)
	uv := e.bitPattern(value)
	uv = (uv &^ (m << uint(r.Offset))) | ((uint64(newBits) & m) << uint(r.Offset))
	return e.fromBitPattern(uv)
}
