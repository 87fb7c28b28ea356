package decode

import "fmt"

// Replacement is the rune substituted for any byte or byte sequence that
// cannot be decoded.
const Replacement = '�'

// Filler is the rune ByteAligned emits for the trailing bytes of a
// multi-byte unit. It is deliberately distinct from Replacement so a
// reader can tell "undecodable byte" from "continuation of the character
// to the left".
const Filler = '•'

// Kind discriminates the three ways a unit can come about.
type Kind uint8

const (
	// KindASCII marks a single valid 7-bit byte.
	KindASCII Kind = iota
	// KindUnicode marks a valid multi-byte UTF-8 sequence.
	KindUnicode
	// KindUnknown marks a single byte that could not be decoded: an
	// invalid lead byte, a stray continuation byte, or the start of a
	// malformed or truncated sequence.
	KindUnknown
)

// Class records how a unit was decoded and how many input bytes it
// consumed. Classes are comparable values.
type Class struct {
	kind  Kind
	width int
}

// ASCII returns the class of a single valid 7-bit byte.
func ASCII() Class { return Class{kind: KindASCII, width: 1} }

// Unknown returns the class of a single undecodable byte. An unknown unit
// always consumes exactly one byte, regardless of how many bytes the
// malformed sequence claimed.
func Unknown() Class { return Class{kind: KindUnknown, width: 1} }

// Unicode returns the class of a valid multi-byte sequence occupying
// width bytes. width must be between 1 and 4; anything else is a bug in
// the caller.
func Unicode(width int) Class {
	if width < 1 || width > 4 {
		panic(fmt.Sprintf("decode: unicode class width %d out of range", width))
	}
	return Class{kind: KindUnicode, width: width}
}

// Kind returns the class discriminant.
func (c Class) Kind() Kind { return c.kind }

// Width returns the number of input bytes the unit consumed.
func (c Class) Width() int {
	if c.kind == KindUnicode {
		return c.width
	}
	return 1
}

func (c Class) String() string {
	switch c.kind {
	case KindASCII:
		return "ascii"
	case KindUnicode:
		return fmt.Sprintf("unicode(%d)", c.width)
	default:
		return "unknown"
	}
}

// Unit is one decoded character together with its classification. Units
// are ephemeral: produced one at a time, never stored by the decoders.
type Unit struct {
	R     rune
	Class Class
}

// UnitSource is the contract shared by the raw decoders: a finite,
// forward-only, single-pass stream of units. Next returns the next unit,
// or ok=false once the input is exhausted. There is no error channel;
// decoding failures surface as units with KindUnknown.
type UnitSource interface {
	Next() (u Unit, ok bool)
}
