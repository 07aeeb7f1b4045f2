package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	PageUp, PageDown      key.Binding

	Backspace, Delete key.Binding

	Save, Quit, Undo key.Binding

	JumpTo                 key.Binding
	Search                 key.Binding
	SearchNext, SearchPrev key.Binding

	ToggleEndian             key.Binding
	StreamGrow, StreamShrink key.Binding

	SwitchPane key.Binding

	Confirm, Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		// Portable paging: not every terminal forwards pgup/pgdn.
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),

		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),

		JumpTo: key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "jump to byte")),

		Search:     key.NewBinding(key.WithKeys("ctrl+f", "/"), key.WithHelp("ctrl+f", "search")),
		SearchNext: key.NewBinding(key.WithKeys("ctrl+n", "enter"), key.WithHelp("ctrl+n", "next match")),
		SearchPrev: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "previous match")),

		ToggleEndian: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "toggle endianness")),

		StreamGrow:   key.NewBinding(key.WithKeys("alt+="), key.WithHelp("alt+=", "grow bit stream")),
		StreamShrink: key.NewBinding(key.WithKeys("alt+-"), key.WithHelp("alt+-", "shrink bit stream")),

		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
