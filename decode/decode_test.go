package decode_test

import (
	"math/rand"
	"testing"

	"github.com/hexgaze/hexgaze/decode"
)

// sample exercises plain text, control bytes, 2- and 4-byte UTF-8
// sequences, NUL, and three independently invalid bytes.
var sample = []byte("text, controls \n \r\n, space \t, unicode \xC3\xA4h \xC3\xA0 la \xF0\x9F\x92\xA9, null \x00, invalid \xC0\xF8\xEE")

func TestByteAlignedASCII(t *testing.T) {
	aligned := decode.NewByteAligned(decode.NewASCII(sample))
	runes := aligned.Runes()

	if len(runes) != len(sample) {
		t.Fatalf("aligned length: got %d runes, want %d", len(runes), len(sample))
	}
	want := "text, controls \n \r\n, space \t, unicode ��h �� la ����, null \x00, invalid ���"
	if got := string(runes); got != want {
		t.Errorf("aligned output:\ngot  %q\nwant %q", got, want)
	}
}

func TestByteAlignedUTF8(t *testing.T) {
	aligned := decode.NewByteAligned(decode.NewUTF8(sample))
	runes := aligned.Runes()

	if len(runes) != len(sample) {
		t.Fatalf("aligned length: got %d runes, want %d", len(runes), len(sample))
	}
	want := "text, controls \n \r\n, space \t, unicode ä•h à• la 💩•••, null \x00, invalid ���"
	if got := string(runes); got != want {
		t.Errorf("aligned output:\ngot  %q\nwant %q", got, want)
	}
}

// Alignment must hold for arbitrary input, both decoders, including
// buffers full of malformed sequences.
func TestByteAlignedLengthPreservation(t *testing.T) {
	rng := rand.New(rand.NewSource(0x1dea))
	for i := 0; i < 200; i++ {
		buf := make([]byte, rng.Intn(512))
		rng.Read(buf)

		for _, tt := range []struct {
			name string
			src  decode.UnitSource
		}{
			{"ascii", decode.NewASCII(buf)},
			{"utf8", decode.NewUTF8(buf)},
		} {
			if got := len(decode.NewByteAligned(tt.src).Runes()); got != len(buf) {
				t.Fatalf("%s: buffer %x: got %d runes, want %d", tt.name, buf, got, len(buf))
			}
		}
	}
}

func TestByteAlignedFillerShape(t *testing.T) {
	// 4-byte unit: one real rune then exactly three fillers.
	aligned := decode.NewByteAligned(decode.NewUTF8([]byte("\xF0\x9F\x92\xA9")))
	want := []rune{'💩', decode.Filler, decode.Filler, decode.Filler}
	got := aligned.Runes()
	if len(got) != len(want) {
		t.Fatalf("got %d runes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rune %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if _, ok := aligned.Next(); ok {
		t.Error("stream did not terminate after last filler")
	}
}

func TestFillerDistinctFromReplacement(t *testing.T) {
	if decode.Filler == decode.Replacement {
		t.Fatal("filler rune must differ from the replacement rune")
	}
}

// A 1-byte unit never produces fillers, whether decoded or substituted.
func TestByteAlignedSingleByteUnits(t *testing.T) {
	aligned := decode.NewByteAligned(decode.NewUTF8([]byte{'a', 0x80, 'b'}))
	got := aligned.Runes()
	want := []rune{'a', decode.Replacement, 'b'}
	if len(got) != len(want) {
		t.Fatalf("got %d runes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rune %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
