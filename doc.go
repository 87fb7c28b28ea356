// Package hexgaze is a terminal hex viewer built around a lossy,
// byte-aligned decoding core.
//
// # Architecture Overview
//
// The repository is organized into packages with distinct
// responsibilities:
//
//	hexgaze/             Root package (documentation only)
//	├── decode/          Lossy ASCII/UTF-8 decoders and the byte-aligned adapter
//	├── render/          Hex panel and text panel formatting with per-byte coloring
//	├── hexfile/         Byte buffer sourcing (files, stdin, windows)
//	├── hexerr/          Structured error types
//	└── cmd/hexgaze/     The viewer command: dump mode and interactive TUI
//
// # Quick Start
//
// Decode arbitrary bytes into a display-ready, byte-aligned rune stream:
//
//	aligned := decode.NewByteAligned(decode.NewUTF8(data))
//	text := aligned.String() // exactly one rune per input byte
//
// Render a buffer the way the viewer does:
//
//	cfg := render.Config{Encoding: render.EncodingUTF8, ShowOffset: true}
//	for _, line := range cfg.Lines(data) {
//	    fmt.Println(line)
//	}
//
// The decoding core never fails on any input: bytes that cannot be
// interpreted become replacement characters, classified as unknown, and
// multi-byte characters are padded with filler glyphs so the text panel
// always lines up with the byte panel.
package hexgaze
