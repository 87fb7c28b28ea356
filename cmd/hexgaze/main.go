package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/hexgaze/hexgaze/hexfile"
	"github.com/hexgaze/hexgaze/render"
)

func main() {
	var (
		encName     = flag.String("enc", "utf8", "Text panel encoding: ascii or utf8")
		width       = flag.Int("w", 0, "Bytes per row (0 = fit the terminal)")
		offset      = flag.Int64("offset", 0, "Start offset into the input")
		length      = flag.Int64("length", 0, "Number of bytes to show (0 = to end)")
		noColor     = flag.Bool("no-color", false, "Disable colored output")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debugLog    = flag.String("debug", "", "Write a debug log to this file")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: hexgaze [flags] <file>")
		fmt.Fprintln(os.Stderr, "       hexgaze [flags] -   (read stdin)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *debugLog != "" {
		logger, err := newDebugLogger(*debugLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open debug log: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		hexfile.SetLogger(logger)
	}

	enc, err := render.ParseEncoding(*encName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path := flag.Arg(0)
	window := hexfile.Window{Offset: *offset, Length: *length}

	if *interactive {
		if err := runInteractive(path, window, enc, *width); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := dump(path, window, enc, *width, *noColor); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dump(path string, window hexfile.Window, enc render.Encoding, width int, noColor bool) error {
	data, err := hexfile.Load(path, window)
	if err != nil {
		return err
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	styles := render.PlainStyles()
	if isTTY && !noColor {
		styles = render.DefaultStyles()
	}
	if width <= 0 {
		width = render.DefaultWidth
		if isTTY {
			if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width = fitWidth(tw)
			}
		}
	}

	cfg := render.Config{
		Width:      width,
		Encoding:   enc,
		ShowOffset: true,
		Styles:     styles,
	}
	return cfg.Dump(os.Stdout, window.Offset, data)
}

// fitWidth picks bytes per row for a terminal of tw columns. Each byte
// costs three columns in the hex panel and one in the text panel; the
// offset column, frames and group gaps take a fixed overhead. The result
// is snapped down to a multiple of eight.
func fitWidth(tw int) int {
	bytes := (tw - 14) / 4
	bytes -= bytes % 8
	if bytes < 8 {
		return 8
	}
	return bytes
}

func newDebugLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
