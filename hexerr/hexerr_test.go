package hexerr

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindOutOfBounds,
				Path:   []string{"dump.bin"},
				Detail: "offset 9000 out of bounds",
			},
			contains: []string{"[load]", "out_of_bounds", "dump.bin", "offset 9000"},
		},
		{
			name:     "minimal error",
			err:      &Error{Phase: PhaseFlag, Kind: KindInvalidInput},
			contains: []string{"[flag]", "invalid_input"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase: PhaseLoad,
				Kind:  KindIO,
				Cause: errors.New("disk on fire"),
			},
			contains: []string{"[load]", "io", "caused by", "disk on fire"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := New(PhaseLoad, KindNotFound).Path("x").Build()
	if !errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindNotFound}) {
		t.Error("expected match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindIO}) {
		t.Error("unexpected match on different kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := IO(PhaseLoad, []string{"f"}, cause)
	if !errors.Is(err, cause) {
		t.Error("expected unwrap to reach the cause")
	}
}

func TestBuilderDetailFormatting(t *testing.T) {
	err := New(PhaseFlag, KindInvalidInput).Detail("bad width %d", 7).Build()
	if !strings.Contains(err.Error(), "bad width 7") {
		t.Errorf("detail not formatted: %q", err.Error())
	}
}
