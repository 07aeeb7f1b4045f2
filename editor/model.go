package editor

import (
	"encoding/binary"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/nibble/buffer"
	"github.com/iw2rmb/nibble/search"
)

// Pane identifies which editor column receives keystrokes.
type Pane int

const (
	PaneHex Pane = iota
	PaneText
)

type popupKind int

const (
	popupNone popupKind = iota
	popupJump
	popupSearch
	popupUnsaved
)

// minWidth and minHeight are the smallest terminal the layout fits in.
const (
	minWidth  = 50
	minHeight = 16
)

// Model is a Bubble Tea component implementing the hex editor.
//
// The cursor address is a byte offset into the store; in the hex pane a
// separate nibble position tracks which half of the byte is being typed.
type Model struct {
	cfg   Config
	store *buffer.Store
	hist  *buffer.History
	index *search.Index

	offset int
	nibble buffer.Nibble
	start  int
	pane   Pane

	bigEndian bool
	streamLen int

	popup       popupKind
	input       textinput.Model
	unsavedQuit bool

	savedVersion uint64
	notification string

	width, height int
	layout        layout
	quitting      bool
}

func New(cfg Config) Model {
	if cfg.Clipboard == nil {
		cfg.Clipboard = SystemClipboard{}
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64

	m := Model{
		cfg:       cfg,
		store:     cfg.Store,
		hist:      &buffer.History{},
		index:     &search.Index{},
		offset:    cfg.Offset,
		streamLen: 8,
		input:     ti,
	}
	m.savedVersion = m.store.Version()
	m.store.Reposition(m.offset)
	return m
}

// Store exposes the underlying byte store, mainly for tests and hosts.
func (m Model) Store() *buffer.Store { return m.store }

// Offset reports the cursor's byte offset.
func (m Model) Offset() int { return m.offset }

// Dirty reports whether the store has unsaved modifications.
func (m Model) Dirty() bool { return m.store.Version() != m.savedVersion }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) View() string { return m.render() }

// byteOrder returns the endianness currently selected for the labels.
func (m Model) byteOrder() binary.ByteOrder {
	if m.bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// setCursor clamps off into the content, realigns the hot window and
// scrolls the view so the cursor stays visible.
func (m *Model) setCursor(off int) {
	if off < 0 {
		off = 0
	}
	if off >= m.store.Len() {
		off = m.store.Len() - 1
	}
	m.offset = off
	m.nibble = buffer.NibbleHigh
	m.store.Reposition(m.offset)
	m.scrollToCursor()
}

// scrollToCursor moves the viewport start so the cursor row is on screen.
func (m *Model) scrollToCursor() {
	bpl, rows := m.layout.bytesPerLine, m.layout.rows
	if bpl <= 0 || rows <= 0 {
		return
	}
	row := m.offset / bpl
	top := m.start / bpl
	if row < top {
		m.start = row * bpl
	} else if row >= top+rows {
		m.start = (row - rows + 1) * bpl
	}
	m.clampScroll()
}

// scrollBy moves the viewport without touching the cursor.
func (m *Model) scrollBy(lines int) {
	if m.layout.bytesPerLine <= 0 {
		return
	}
	m.start += lines * m.layout.bytesPerLine
	m.clampScroll()
}

func (m *Model) clampScroll() {
	bpl, rows := m.layout.bytesPerLine, m.layout.rows
	if bpl <= 0 {
		m.start = 0
		return
	}
	lastRow := (m.store.Len() - 1) / bpl
	maxStart := (lastRow - rows + 1) * bpl
	if maxStart < 0 {
		maxStart = 0
	}
	if m.start > maxStart {
		m.start = maxStart
	}
	if m.start < 0 {
		m.start = 0
	}
}

func (m *Model) notify(s string) { m.notification = s }
