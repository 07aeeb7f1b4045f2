package editor

import "github.com/atotto/clipboard"

// Clipboard abstracts the system clipboard so tests can substitute an
// in-memory implementation.
type Clipboard interface {
	WriteText(s string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(s string) error {
	return clipboard.WriteAll(s)
}
