package decode

// ASCIIDecoder decodes a buffer one byte per unit: 7-bit bytes map to the
// rune with the same value, everything else to the replacement rune.
type ASCIIDecoder struct {
	data   []byte
	cursor int
}

var _ UnitSource = (*ASCIIDecoder)(nil)

// NewASCII creates an ASCII decoder over data. The buffer is borrowed and
// must outlive the decoder; it is never copied or written.
func NewASCII(data []byte) *ASCIIDecoder {
	return &ASCIIDecoder{data: data}
}

// Position returns the byte offset of the next unit.
func (d *ASCIIDecoder) Position() int { return d.cursor }

// Next returns the next unit. Every unit consumes exactly one byte.
func (d *ASCIIDecoder) Next() (Unit, bool) {
	if d.cursor >= len(d.data) {
		return Unit{}, false
	}
	b := d.data[d.cursor]
	d.cursor++
	if b <= 0x7F {
		return Unit{R: rune(b), Class: ASCII()}, true
	}
	return Unit{R: Replacement, Class: Unknown()}, true
}
