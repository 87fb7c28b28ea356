package decode

import "strings"

// ByteAligned adapts a unit stream into a plain rune stream with exactly
// one rune per input byte: each unit contributes its rune followed by
// width-1 filler runes. It works over any UnitSource, so both decoder
// variants (and anything else honoring the contract) can sit underneath.
type ByteAligned struct {
	src  UnitSource
	fill int
}

// NewByteAligned wraps src. The adapter pulls from src lazily, one unit
// at a time, only when its own Next is called.
func NewByteAligned(src UnitSource) *ByteAligned {
	return &ByteAligned{src: src}
}

// Next returns the next aligned rune, or ok=false when the underlying
// stream is exhausted and no fillers are pending.
func (a *ByteAligned) Next() (rune, bool) {
	if a.fill > 0 {
		a.fill--
		return Filler, true
	}
	u, ok := a.src.Next()
	if !ok {
		return 0, false
	}
	a.fill = u.Class.Width() - 1
	return u.R, true
}

// Runes drains the remaining stream into a slice.
func (a *ByteAligned) Runes() []rune {
	var runes []rune
	for {
		r, ok := a.Next()
		if !ok {
			return runes
		}
		runes = append(runes, r)
	}
}

// String drains the remaining stream into a string.
func (a *ByteAligned) String() string {
	var b strings.Builder
	for {
		r, ok := a.Next()
		if !ok {
			return b.String()
		}
		b.WriteRune(r)
	}
}
