// Package decode turns raw bytes into display cells for the editor panes.
//
// Every byte maps to exactly one cell, so hex and text columns stay
// aligned: a multi-byte UTF-8 rune occupies one cell for its first byte
// and fill cells for the rest.
package decode

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Encoding selects how the text pane interprets bytes.
type Encoding int

const (
	ASCII Encoding = iota
	UTF8
)

// ParseEncoding parses the CLI flag form of an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "ascii":
		return ASCII, nil
	case "utf8", "utf-8":
		return UTF8, nil
	}
	return ASCII, fmt.Errorf("unknown encoding %q (want ascii or utf8)", s)
}

func (e Encoding) String() string {
	if e == UTF8 {
		return "utf8"
	}
	return "ascii"
}

// Category classifies a cell for coloring and escaping.
type Category int

const (
	Null Category = iota
	Printable
	Unicode
	Whitespace
	Control
	Fill
	Unknown
)

// Placeholder runes for cells that cannot be shown verbatim.
const (
	runeNull       = '0'
	runeWhitespace = '_'
	runeControl    = '⍾'
	runeFill       = '•'
	runeUnknown    = '�'
)

// Cell is one byte's worth of display information.
type Cell struct {
	Rune rune
	Cat  Category
}

// Display returns the rune actually drawn in the text pane.
func (c Cell) Display() rune {
	switch c.Cat {
	case Null:
		return runeNull
	case Whitespace:
		if c.Rune == ' ' {
			return ' '
		}
		return runeWhitespace
	case Control:
		return runeControl
	case Fill:
		return runeFill
	case Unknown:
		return runeUnknown
	}
	return c.Rune
}

// Cells decodes b into one cell per byte.
func Cells(b []byte, enc Encoding) []Cell {
	if enc == UTF8 {
		return utf8Cells(b)
	}
	return asciiCells(b)
}

func asciiCells(b []byte) []Cell {
	cells := make([]Cell, len(b))
	for i, c := range b {
		if c < utf8.RuneSelf {
			cells[i] = Cell{Rune: rune(c), Cat: categorize(rune(c))}
		} else {
			cells[i] = Cell{Rune: runeUnknown, Cat: Unknown}
		}
	}
	return cells
}

func utf8Cells(b []byte) []Cell {
	cells := make([]Cell, 0, len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			cells = append(cells, Cell{Rune: runeUnknown, Cat: Unknown})
			i++
			continue
		}
		cells = append(cells, Cell{Rune: r, Cat: categorize(r)})
		for j := 1; j < size; j++ {
			cells = append(cells, Cell{Rune: runeFill, Cat: Fill})
		}
		i += size
	}
	return cells
}

func categorize(r rune) Category {
	switch {
	case r == 0:
		return Null
	case unicode.IsSpace(r):
		return Whitespace
	case unicode.IsControl(r):
		return Control
	case r < utf8.RuneSelf:
		return Printable
	}
	return Unicode
}
