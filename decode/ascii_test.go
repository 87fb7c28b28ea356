package decode_test

import (
	"testing"

	"github.com/hexgaze/hexgaze/decode"
)

func TestASCIIFidelity(t *testing.T) {
	buf := make([]byte, 0x80)
	for i := range buf {
		buf[i] = byte(i)
	}
	d := decode.NewASCII(buf)
	for i := 0; i < 0x80; i++ {
		u, ok := d.Next()
		if !ok {
			t.Fatalf("stream ended at byte %#02x", i)
		}
		if u.R != rune(i) {
			t.Errorf("byte %#02x: got rune %q, want %q", i, u.R, rune(i))
		}
		if u.Class != decode.ASCII() {
			t.Errorf("byte %#02x: got class %v, want ascii", i, u.Class)
		}
	}
	if _, ok := d.Next(); ok {
		t.Error("stream did not terminate at buffer end")
	}
}

func TestASCIISubstitution(t *testing.T) {
	for b := 0x80; b <= 0xFF; b++ {
		d := decode.NewASCII([]byte{byte(b)})
		u, ok := d.Next()
		if !ok {
			t.Fatalf("byte %#02x: stream ended early", b)
		}
		if u.R != decode.Replacement {
			t.Errorf("byte %#02x: got rune %q, want replacement", b, u.R)
		}
		if u.Class != decode.Unknown() {
			t.Errorf("byte %#02x: got class %v, want unknown", b, u.Class)
		}
		if d.Position() != 1 {
			t.Errorf("byte %#02x: cursor at %d, want 1", b, d.Position())
		}
	}
}

func TestASCIINeverMergesBytes(t *testing.T) {
	// High bytes that form a valid UTF-8 sequence must still decode as
	// two independent unknown units.
	d := decode.NewASCII([]byte("\xC3\xA4"))
	for i := 0; i < 2; i++ {
		u, ok := d.Next()
		if !ok {
			t.Fatalf("stream ended at unit %d", i)
		}
		if u.Class != decode.Unknown() {
			t.Errorf("unit %d: got class %v, want unknown", i, u.Class)
		}
	}
	if _, ok := d.Next(); ok {
		t.Error("stream did not terminate after two units")
	}
}
