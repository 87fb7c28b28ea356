// Package decode turns arbitrary byte buffers into display-ready rune
// streams for a hex viewer: a byte panel on one side, a character panel on
// the other, one character cell per byte.
//
// Two raw decoders interpret the buffer under different assumptions:
//
//	decode.NewASCII(data)  // 7-bit only, everything else is unknown
//	decode.NewUTF8(data)   // lossy UTF-8, multi-byte sequences allowed
//
// Both produce a stream of units, one unit per decoded character, where a
// unit carries the rune and a Class recording how many input bytes it
// consumed. Decoding never fails: a byte or sequence that cannot be
// interpreted becomes the replacement character with ClassUnknown, and the
// decoder resynchronizes at the very next byte. Corrupt input is data, not
// an error.
//
// ByteAligned wraps any UnitSource and pads every multi-byte unit with
// filler runes so that the output stream has exactly one rune per input
// byte:
//
//	aligned := decode.NewByteAligned(decode.NewUTF8(data))
//	for {
//	    r, ok := aligned.Next()
//	    if !ok {
//	        break
//	    }
//	    // exactly len(data) runes arrive here
//	}
//
// All streams are lazy, single-pass and pull-based: no byte is examined
// before the consumer asks for it, so very large buffers can be rendered
// progressively. A decoder borrows its buffer and never copies or mutates
// it; any number of decoders may read the same buffer at once, but a single
// decoder must not be pulled from more than one goroutine.
package decode
