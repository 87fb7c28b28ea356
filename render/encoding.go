package render

import (
	"github.com/hexgaze/hexgaze/decode"
	"github.com/hexgaze/hexgaze/hexerr"
)

// Encoding selects which raw decoder interprets the buffer.
type Encoding int

const (
	// EncodingUTF8 decodes lossy UTF-8 with multi-byte characters.
	EncodingUTF8 Encoding = iota
	// EncodingASCII decodes 7-bit bytes only.
	EncodingASCII
)

func (e Encoding) String() string {
	if e == EncodingASCII {
		return "ascii"
	}
	return "utf8"
}

// ParseEncoding maps a flag value to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "utf8", "utf-8":
		return EncodingUTF8, nil
	case "ascii":
		return EncodingASCII, nil
	}
	return 0, hexerr.InvalidInput(hexerr.PhaseFlag, []string{"enc"},
		"unknown encoding "+s+" (want ascii or utf8)")
}

// Source constructs a raw decoder of this encoding over data.
func (e Encoding) Source(data []byte) decode.UnitSource {
	if e == EncodingASCII {
		return decode.NewASCII(data)
	}
	return decode.NewUTF8(data)
}
