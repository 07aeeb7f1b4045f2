package editor

import (
	"github.com/iw2rmb/nibble/buffer"
	"github.com/iw2rmb/nibble/internal/decode"
)

// Config carries the editor's dependencies and initial state. Store is the
// only required field; zero values for the rest select sensible defaults.
type Config struct {
	// Store holds the bytes being edited. Required.
	Store *buffer.Store

	// Encoding selects how the text pane decodes bytes.
	Encoding decode.Encoding

	// Offset positions the cursor on startup. It must be less than the
	// store length; callers validate this before constructing the model.
	Offset int

	// Style controls colors and borders. The zero value renders unstyled;
	// most callers pass DefaultStyle().
	Style Style

	// KeyMap binds keys to editor actions. The zero value is replaced by
	// DefaultKeyMap.
	KeyMap KeyMap

	// Clipboard receives label values copied with a mouse click. The zero
	// value is replaced by SystemClipboard.
	Clipboard Clipboard
}
