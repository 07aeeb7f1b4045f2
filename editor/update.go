package editor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/nibble/buffer"
	"github.com/iw2rmb/nibble/search"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout = computeLayout(msg.Width, msg.Height)
		m.scrollToCursor()
		return m, nil
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if m.popup != popupNone {
			return m.updatePopup(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	bpl, rows := m.layout.bytesPerLine, m.layout.rows

	switch {
	case key.Matches(msg, km.Quit):
		if !m.Dirty() {
			m.quitting = true
			return m, tea.Quit
		}
		m.popup = popupUnsaved
		m.unsavedQuit = false

	case key.Matches(msg, km.Save):
		if err := m.store.Flush(); err != nil {
			m.notify(fmt.Sprintf("save failed: %v", err))
		} else {
			m.savedVersion = m.store.Version()
			m.notify("saved")
		}

	case key.Matches(msg, km.Undo):
		res, ok := m.hist.Undo(m.store)
		if !ok {
			m.notify("nothing to undo")
			break
		}
		m.setCursor(res.Offset)
		if res.HasNibble {
			m.nibble = res.Nibble
		}

	case key.Matches(msg, km.Left):
		if m.pane == PaneHex && m.nibble == buffer.NibbleLow {
			m.nibble = buffer.NibbleHigh
		} else if m.offset > 0 {
			wantLow := m.pane == PaneHex
			m.setCursor(m.offset - 1)
			if wantLow {
				m.nibble = buffer.NibbleLow
			}
		}

	case key.Matches(msg, km.Right):
		if m.pane == PaneHex && m.nibble == buffer.NibbleHigh {
			m.nibble = buffer.NibbleLow
		} else if m.offset < m.store.Len()-1 {
			m.setCursor(m.offset + 1)
		}

	case key.Matches(msg, km.Up):
		if bpl > 0 && m.offset >= bpl {
			m.setCursor(m.offset - bpl)
		}

	case key.Matches(msg, km.Down):
		if bpl > 0 && m.offset+bpl < m.store.Len() {
			m.setCursor(m.offset + bpl)
		}

	case key.Matches(msg, km.Home):
		if bpl > 0 {
			m.setCursor(m.offset / bpl * bpl)
		}

	case key.Matches(msg, km.End):
		if bpl > 0 {
			m.setCursor(m.offset/bpl*bpl + bpl - 1)
		}

	case key.Matches(msg, km.PageUp):
		if bpl > 0 {
			m.setCursor(m.offset - bpl*rows)
		}

	case key.Matches(msg, km.PageDown):
		if bpl > 0 {
			m.setCursor(m.offset + bpl*rows)
		}

	case key.Matches(msg, km.Backspace):
		if m.offset > 0 && m.store.Len() > 1 {
			target := m.offset - 1
			m.hist.Record(buffer.Delete(target, m.store.Bytes()[target]))
			m.store.Remove(target)
			m.setCursor(target)
		}

	case key.Matches(msg, km.Delete):
		if m.store.Len() > 1 {
			m.hist.Record(buffer.Delete(m.offset, m.store.Bytes()[m.offset]))
			m.store.Remove(m.offset)
			m.setCursor(m.offset)
		}

	case key.Matches(msg, km.JumpTo):
		m.openPopup(popupJump, "offset (hex or decimal)")

	case key.Matches(msg, km.Search) && (m.pane == PaneHex || msg.String() != "/"):
		m.openPopup(popupSearch, "query")

	case key.Matches(msg, km.SearchNext):
		m.findMatch(search.Forward)

	case key.Matches(msg, km.SearchPrev):
		m.findMatch(search.Backward)

	case key.Matches(msg, km.ToggleEndian):
		m.bigEndian = !m.bigEndian
		if m.bigEndian {
			m.notify("big endian")
		} else {
			m.notify("little endian")
		}

	case key.Matches(msg, km.StreamGrow):
		if m.streamLen < maxStreamLength {
			m.streamLen++
		}

	case key.Matches(msg, km.StreamShrink):
		if m.streamLen > 0 {
			m.streamLen--
		}

	case key.Matches(msg, km.SwitchPane):
		if m.pane == PaneHex {
			m.pane = PaneText
		} else {
			m.pane = PaneHex
		}
		m.nibble = buffer.NibbleHigh

	default:
		m.typeRune(msg)
	}
	return m, nil
}

// typeRune applies a printable keystroke as an overwrite at the cursor.
func (m *Model) typeRune(msg tea.KeyMsg) {
	var r rune
	switch {
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt:
		r = msg.Runes[0]
	case msg.Type == tea.KeySpace:
		r = ' '
	default:
		return
	}

	old := m.store.Bytes()[m.offset]
	if m.pane == PaneHex {
		v, err := strconv.ParseUint(string(r), 16, 8)
		if err != nil {
			m.notify(fmt.Sprintf("%q is not a hex digit", r))
			return
		}
		m.hist.Record(buffer.OverwriteNibble(m.offset, old, m.nibble))
		if m.nibble == buffer.NibbleHigh {
			m.store.Set(m.offset, byte(v)<<4|old&0x0F)
			m.nibble = buffer.NibbleLow
		} else {
			m.store.Set(m.offset, old&0xF0|byte(v))
			if m.offset < m.store.Len()-1 {
				m.setCursor(m.offset + 1)
			} else {
				m.nibble = buffer.NibbleHigh
			}
		}
		return
	}

	if r > 0xFF {
		m.notify(fmt.Sprintf("%q does not fit in one byte", r))
		return
	}
	m.hist.Record(buffer.Overwrite(m.offset, old))
	m.store.Set(m.offset, byte(r))
	if m.offset < m.store.Len()-1 {
		m.setCursor(m.offset + 1)
	}
}

func (m *Model) openPopup(kind popupKind, placeholder string) {
	m.popup = kind
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.Focus()
}

func (m Model) updatePopup(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	if m.popup == popupUnsaved {
		switch {
		case key.Matches(msg, km.Left), key.Matches(msg, km.Right), key.Matches(msg, km.SwitchPane):
			m.unsavedQuit = !m.unsavedQuit
		case key.Matches(msg, km.Confirm):
			if m.unsavedQuit {
				m.quitting = true
				return m, tea.Quit
			}
			m.popup = popupNone
		case key.Matches(msg, km.Cancel):
			m.popup = popupNone
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Cancel):
		m.popup = popupNone
		m.input.Blur()
		return m, nil
	case key.Matches(msg, km.Confirm):
		value := strings.TrimSpace(m.input.Value())
		kind := m.popup
		m.popup = popupNone
		m.input.Blur()
		if kind == popupJump {
			m.jumpTo(value)
		} else {
			m.searchFor(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// jumpTo parses a byte offset, accepting 0x-prefixed hex or plain decimal.
func (m *Model) jumpTo(value string) {
	off, err := strconv.ParseUint(value, 0, 64)
	if err != nil || off >= uint64(m.store.Len()) {
		m.notify(fmt.Sprintf("invalid offset %q", value))
		return
	}
	m.setCursor(int(off))
}

func (m *Model) searchFor(value string) {
	if value == "" {
		m.notify("empty search query")
		return
	}
	m.index.SetQuery(value)
	m.findMatch(search.Forward)
}

func (m *Model) findMatch(dir search.Direction) {
	if m.index.Empty() {
		m.notify("empty search query")
		return
	}
	// Queued tail shifts must land before the scan, or matches in the
	// cold tail would be computed from bytes still being moved.
	m.store.Block()
	content := m.store.Bytes()
	off, ok := m.index.FindNext(content, m.store.Version(), m.offset, dir)
	if !ok {
		m.notify(fmt.Sprintf("%q not found", m.index.Query()))
		return
	}
	m.setCursor(off)
	matches := m.index.Matches(content, m.store.Version())
	m.notify(fmt.Sprintf("match %d of %d", sort.SearchInts(matches, off)+1, len(matches)))
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(1)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && m.popup == popupNone:
		m.click(msg.X, msg.Y)
	}
	return m, nil
}

// click moves the cursor to the byte under x,y, or copies the label value
// when the click lands in the interpretation grid.
func (m *Model) click(x, y int) {
	l := m.layout
	if l.bytesPerLine == 0 {
		return
	}

	if y > l.labelsY && y < l.labelsY+labelRows+1 && x > 0 && l.labelW > 0 {
		row, col := y-l.labelsY-1, (x-1)/l.labelW
		if col > 3 {
			col = 3
		}
		idx := row*4 + col
		lb := m.labels()[idx]
		if err := m.cfg.Clipboard.WriteText(lb.value); err != nil {
			m.notify(fmt.Sprintf("clipboard: %v", err))
			return
		}
		m.notify(lb.title + " copied")
		return
	}

	if y < 1 || y > l.rows {
		return
	}
	row := y - 1

	var col int
	switch {
	case x > l.hexX && x < l.hexX+1+l.bytesPerLine*3:
		m.pane = PaneHex
		col = (x - l.hexX - 1) / 3
	case x > l.textX && x <= l.textX+l.bytesPerLine:
		m.pane = PaneText
		col = x - l.textX - 1
	default:
		return
	}

	off := m.start + row*l.bytesPerLine + col
	if off >= m.store.Len() {
		return
	}
	nibbleLow := m.pane == PaneHex && (x-l.hexX-1)%3 == 1
	m.setCursor(off)
	if nibbleLow {
		m.nibble = buffer.NibbleLow
	}
}

func (m Model) labels() []label {
	return computeLabels(m.store.Bytes(), m.offset, m.byteOrder(), m.streamLen, m.notification)
}
