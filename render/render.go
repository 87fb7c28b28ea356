// Package render formats decoded bytes into the two panels of a hex
// viewer: a hex byte panel and a byte-aligned text panel, one column per
// input byte. Coloring follows the decoder's per-byte classification.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/hexgaze/hexgaze/decode"
	"github.com/hexgaze/hexgaze/hexerr"
)

// DefaultWidth is the number of bytes per row when Config.Width is zero.
const DefaultWidth = 16

// nonPrintable stands in for control bytes and unprintable runes in the
// text panel. The aligned rune stream itself is never altered; this is
// purely a display substitution.
const nonPrintable = '·'

// Config describes one rendering of a buffer.
type Config struct {
	Width      int // bytes per row, DefaultWidth if <= 0
	Encoding   Encoding
	ShowOffset bool
	Styles     Styles
}

func (c Config) width() int {
	if c.Width <= 0 {
		return DefaultWidth
	}
	return c.Width
}

// cell is one byte of the buffer with its decoded classification and its
// rune from the byte-aligned stream.
type cell struct {
	b     byte
	r     rune
	class decode.Class
	lead  bool // first byte of its unit; the rest are filler columns
	skip  bool // filler column absorbed by a wide rune to its left
}

func (c Config) cells(data []byte) []cell {
	src := c.Encoding.Source(data)
	cells := make([]cell, 0, len(data))
	for {
		u, ok := src.Next()
		if !ok {
			break
		}
		for i := 0; i < u.Class.Width(); i++ {
			cells = append(cells, cell{class: u.Class, lead: i == 0})
		}
	}

	aligned := decode.NewByteAligned(c.Encoding.Source(data))
	for i := range cells {
		r, ok := aligned.Next()
		if !ok {
			panic("render: aligned stream shorter than input")
		}
		cells[i].b = data[i]
		cells[i].r = r
	}

	// A wide rune (emoji, CJK) occupies two columns, so it absorbs the
	// filler column immediately after it to keep rows byte-wide.
	for i := range cells {
		if !cells[i].lead {
			continue
		}
		for j := 1; j < runewidth.RuneWidth(c.displayRune(cells[i])); j++ {
			if i+j >= len(cells) || cells[i+j].lead {
				break
			}
			cells[i+j].skip = true
		}
	}
	return cells
}

// Lines renders the whole buffer, one string per row.
func (c Config) Lines(data []byte) []string {
	return c.LinesAt(0, data)
}

// LinesAt renders the buffer with offsets displayed relative to base,
// for windowed views into a larger input.
func (c Config) LinesAt(base int64, data []byte) []string {
	w := c.width()
	cells := c.cells(data)
	lines := make([]string, 0, (len(cells)+w-1)/w)
	for start := 0; start < len(cells); start += w {
		end := min(start+w, len(cells))
		lines = append(lines, c.line(base+int64(start), cells[start:end]))
	}
	return lines
}

// Dump writes the rendered rows to w.
func (c Config) Dump(w io.Writer, base int64, data []byte) error {
	for _, line := range c.LinesAt(base, data) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return hexerr.IO(hexerr.PhaseRender, nil, err)
		}
	}
	return nil
}

func (c Config) line(offset int64, row []cell) string {
	w := c.width()
	var b strings.Builder

	if c.ShowOffset {
		b.WriteString(c.Styles.Offset.Render(fmt.Sprintf("%08x", offset)))
		b.WriteString("  ")
	}

	for i := 0; i < w; i++ {
		if i > 0 {
			b.WriteByte(' ')
			if i%8 == 0 {
				b.WriteByte(' ')
			}
		}
		if i < len(row) {
			b.WriteString(c.styleFor(row[i]).Render(fmt.Sprintf("%02x", row[i].b)))
		} else {
			b.WriteString("  ")
		}
	}

	b.WriteString("  ")
	b.WriteString(c.Styles.Frame.Render("|"))
	cols := 0
	for _, cl := range row {
		if cl.skip {
			continue
		}
		r := c.displayRune(cl)
		b.WriteString(c.styleFor(cl).Render(string(r)))
		cols += runewidth.RuneWidth(r)
	}
	for ; cols < w; cols++ {
		b.WriteByte(' ')
	}
	b.WriteString(c.Styles.Frame.Render("|"))
	return b.String()
}

func (c Config) displayRune(cl cell) rune {
	switch {
	case cl.class.Kind() == decode.KindUnknown:
		return decode.Replacement
	case !cl.lead:
		return decode.Filler
	case !strconv.IsPrint(cl.r) || runewidth.RuneWidth(cl.r) == 0:
		return nonPrintable
	default:
		return cl.r
	}
}

// styleFor picks the classification color shared by a byte's hex cell
// and its text cell.
func (c Config) styleFor(cl cell) lipgloss.Style {
	switch cl.class.Kind() {
	case decode.KindUnknown:
		return c.Styles.Unknown
	case decode.KindUnicode:
		if !cl.lead {
			return c.Styles.Filler
		}
		return c.Styles.Unicode
	}
	switch {
	case cl.b == 0x00:
		return c.Styles.Null
	case strconv.IsPrint(cl.r):
		return c.Styles.Printable
	default:
		return c.Styles.Control
	}
}
