// Package hexerr provides structured errors for the parts of the viewer
// that can actually fail: loading bytes, rendering, flag handling.
//
// Errors carry a Phase (where) and a Kind (what), comparable with
// errors.Is:
//
//	err := hexerr.New(hexerr.PhaseLoad, hexerr.KindNotFound).
//	    Path("file.bin").
//	    Detail("no such file").
//	    Build()
//
//	errors.Is(err, &hexerr.Error{Phase: hexerr.PhaseLoad, Kind: hexerr.KindNotFound}) // true
package hexerr
