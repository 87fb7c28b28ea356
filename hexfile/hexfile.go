// Package hexfile sources the byte buffer the viewer displays: a file, or
// stdin when the path is "-". A Window restricts the view to a slice of
// the input without reading the rest of a large file.
package hexfile

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/hexgaze/hexgaze/hexerr"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Window selects a byte range of the input. Offset is clamped against
// the input size; Length <= 0 means "to the end".
type Window struct {
	Offset int64
	Length int64
}

// Load reads the windowed contents of path. The returned buffer is owned
// by the caller; decoders borrow it from there.
func Load(path string, w Window) ([]byte, error) {
	if w.Offset < 0 {
		return nil, hexerr.InvalidInput(hexerr.PhaseLoad, []string{path}, "negative offset")
	}
	if path == Stdin {
		return loadStdin(w)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, hexerr.New(hexerr.PhaseLoad, hexerr.KindNotFound).
				Path(path).
				Cause(err).
				Build()
		}
		return nil, hexerr.IO(hexerr.PhaseLoad, []string{path}, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, hexerr.IO(hexerr.PhaseLoad, []string{path}, err)
	}
	size := info.Size()
	if w.Offset > size {
		return nil, hexerr.OutOfBounds(hexerr.PhaseLoad, []string{path}, w.Offset, size)
	}

	length := size - w.Offset
	if w.Length > 0 && w.Length < length {
		length = w.Length
	}

	buf := make([]byte, length)
	if _, err := f.ReadAt(buf, w.Offset); err != nil && !errors.Is(err, io.EOF) {
		return nil, hexerr.IO(hexerr.PhaseLoad, []string{path}, err)
	}

	Logger().Debug("loaded file",
		zap.String("path", path),
		zap.Int64("size", size),
		zap.Int64("offset", w.Offset),
		zap.Int("bytes", len(buf)))
	return buf, nil
}

func loadStdin(w Window) ([]byte, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, hexerr.IO(hexerr.PhaseLoad, []string{Stdin}, err)
	}
	size := int64(len(data))
	if w.Offset > size {
		return nil, hexerr.OutOfBounds(hexerr.PhaseLoad, []string{Stdin}, w.Offset, size)
	}
	data = data[w.Offset:]
	if w.Length > 0 && w.Length < int64(len(data)) {
		data = data[:w.Length]
	}

	Logger().Debug("loaded stdin",
		zap.Int64("size", size),
		zap.Int64("offset", w.Offset),
		zap.Int("bytes", len(data)))
	return data, nil
}
