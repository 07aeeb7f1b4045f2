// Package buffer implements the editable byte store for nibble.
//
// A Store memory-maps the file copy-on-write and splits it at a moving
// boundary: the hot window (everything before the boundary) is shifted
// synchronously on every edit, the cold tail (everything after it) is
// shifted by a background goroutine. The two sides never write to
// overlapping ranges; the boundary only moves through Reposition, which
// waits for the worker to drain first.
//
// History is the undo log layered on the Store's mutation primitives.
package buffer
