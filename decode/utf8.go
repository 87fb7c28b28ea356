package decode

import (
	"fmt"
	"unicode/utf8"
)

// UTF8Decoder decodes a buffer as lossy UTF-8. Valid sequences of 1-4
// bytes become one unit each; an invalid or truncated sequence yields a
// replacement unit for its first byte only, so decoding resumes at the
// following byte rather than skipping the whole malformed run.
type UTF8Decoder struct {
	data   []byte
	cursor int
}

var _ UnitSource = (*UTF8Decoder)(nil)

// NewUTF8 creates a UTF-8 decoder over data. The buffer is borrowed and
// must outlive the decoder; it is never copied or written.
func NewUTF8(data []byte) *UTF8Decoder {
	return &UTF8Decoder{data: data}
}

// Position returns the byte offset of the next unit.
func (d *UTF8Decoder) Position() int { return d.cursor }

// Next returns the next unit. A valid multi-byte sequence consumes its
// full declared width; any failure consumes exactly one byte.
func (d *UTF8Decoder) Next() (Unit, bool) {
	if d.cursor >= len(d.data) {
		return Unit{}, false
	}

	var width int
	switch lead := d.data[d.cursor]; {
	case lead <= 0x7F:
		d.cursor++
		return Unit{R: rune(lead), Class: ASCII()}, true
	case lead >= 0xC0 && lead <= 0xDF:
		width = 2
	case lead >= 0xE0 && lead <= 0xEF:
		width = 3
	case lead >= 0xF0 && lead <= 0xF7:
		width = 4
	default:
		// Stray continuation byte or invalid lead (0xF8-0xFF).
		d.cursor++
		return Unit{R: Replacement, Class: Unknown()}, true
	}

	end := min(d.cursor+width, len(d.data))
	chunk := d.data[d.cursor:end]

	r, n := utf8.DecodeRune(chunk)
	// The sequence must be well formed and fill the full declared width.
	// Checking n against width (not len(chunk)) also rejects a buffer
	// that ends mid-sequence, even if the truncated chunk happened to
	// start with a valid shorter character.
	if n != width || (r == utf8.RuneError && n == 1) {
		d.cursor++
		return Unit{R: Replacement, Class: Unknown()}, true
	}
	if !utf8.RuneStart(chunk[0]) || utf8.RuneLen(r) != width {
		// Unreachable given the checks above; reaching it means the
		// validation step itself is broken.
		panic(fmt.Sprintf("decode: utf8 validation accepted %x as width %d", chunk, width))
	}
	d.cursor += width
	return Unit{R: r, Class: Unicode(width)}, true
}
