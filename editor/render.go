package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/nibble/buffer"
	"github.com/iw2rmb/nibble/internal/decode"
)

const (
	addrDigits = 8
	labelRows  = 4

	// labelAreaHeight includes the grid border.
	labelAreaHeight = labelRows + 2
)

// layout holds the computed pane geometry for the current terminal size.
// Widths are content widths, x positions are absolute screen columns of a
// pane's left border.
type layout struct {
	bytesPerLine int
	rows         int
	addrW        int
	hexX, hexW   int
	textX, textW int
	labelsY      int
	labelW       int
}

func computeLayout(w, h int) layout {
	var l layout
	if w < minWidth || h < minHeight {
		return l
	}

	editorH := h - labelAreaHeight
	l.rows = editorH - 2
	l.addrW = addrDigits + 2

	rest := w - l.addrW
	hexTotal := rest * 3 / 4
	l.hexX = l.addrW
	l.textX = l.addrW + hexTotal
	l.hexW = hexTotal - 2
	l.textW = rest - hexTotal - 2

	bpl := (l.hexW + 1) / 3
	if bpl > l.textW {
		bpl = l.textW
	}
	if bpl < 1 {
		bpl = 1
	}
	l.bytesPerLine = bpl

	l.labelsY = editorH
	l.labelW = (w - 2) / 4
	return l
}

func (m Model) render() string {
	if m.quitting {
		return ""
	}
	l := m.layout
	if l.bytesPerLine == 0 {
		return fmt.Sprintf("Terminal too small: need at least %dx%d.", minWidth, minHeight)
	}

	content := m.store.Bytes()
	end := min(m.start+l.bytesPerLine*l.rows, len(content))
	cells := decode.Cells(content[m.start:end], m.cfg.Encoding)

	var addr, hex, text []string
	for row := 0; row < l.rows; row++ {
		lineStart := m.start + row*l.bytesPerLine
		if lineStart >= end {
			break
		}
		addr = append(addr, m.cfg.Style.Address.Render(fmt.Sprintf("%0*X", addrDigits, lineStart)))
		hex = append(hex, m.renderHexLine(content, cells, lineStart, end))
		text = append(text, m.renderTextLine(cells, lineStart, end))
	}

	st := m.cfg.Style
	addrPane := st.Pane.Width(addrDigits).Height(l.rows).Render(strings.Join(addr, "\n"))
	hexPane := m.paneStyle(PaneHex).Width(l.hexW).Height(l.rows).Render(strings.Join(hex, "\n"))
	textPane := m.paneStyle(PaneText).Width(l.textW).Height(l.rows).Render(strings.Join(text, "\n"))

	view := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, addrPane, hexPane, textPane),
		m.renderLabels(),
	)
	if m.popup != popupNone {
		view = overlayCenter(view, m.renderPopup())
	}
	return view
}

func (m Model) paneStyle(p Pane) lipgloss.Style {
	if m.pane == p {
		return m.cfg.Style.FocusedPane
	}
	return m.cfg.Style.Pane
}

func (m Model) renderHexLine(content []byte, cells []decode.Cell, lineStart, end int) string {
	var b strings.Builder
	for i := lineStart; i < min(lineStart+m.layout.bytesPerLine, end); i++ {
		if i > lineStart {
			b.WriteByte(' ')
		}
		st := m.cfg.Style.categoryStyle(cells[i-m.start].Cat)
		hx := fmt.Sprintf("%02X", content[i])
		switch {
		case i == m.offset && m.pane == PaneHex:
			cur := m.cfg.Style.Cursor
			if m.nibble == buffer.NibbleHigh {
				b.WriteString(cur.Render(hx[:1]) + st.Render(hx[1:]))
			} else {
				b.WriteString(st.Render(hx[:1]) + cur.Render(hx[1:]))
			}
		case i == m.offset:
			b.WriteString(m.cfg.Style.GhostCursor.Render(hx))
		default:
			b.WriteString(st.Render(hx))
		}
	}
	return b.String()
}

func (m Model) renderTextLine(cells []decode.Cell, lineStart, end int) string {
	var b strings.Builder
	for i := lineStart; i < min(lineStart+m.layout.bytesPerLine, end); i++ {
		c := cells[i-m.start]
		r := c.Display()
		// Wide runes would break the one-column-per-byte grid.
		if runewidth.RuneWidth(r) != 1 {
			r = '·'
		}
		st := m.cfg.Style.categoryStyle(c.Cat)
		switch {
		case i == m.offset && m.pane == PaneText:
			st = m.cfg.Style.Cursor
		case i == m.offset:
			st = m.cfg.Style.GhostCursor
		}
		b.WriteString(st.Render(string(r)))
	}
	return b.String()
}

func (m Model) renderLabels() string {
	labels := m.labels()
	cellW := m.layout.labelW

	var rows []string
	for row := 0; row < labelRows; row++ {
		var b strings.Builder
		for col := 0; col < 4; col++ {
			lb := labels[row*4+col]
			s := m.cfg.Style.LabelTitle.Render(lb.title+":") + " " + lb.value
			b.WriteString(padCell(s, cellW))
		}
		rows = append(rows, b.String())
	}
	return m.cfg.Style.Label.Width(m.width - 2).Render(strings.Join(rows, "\n"))
}

// padCell truncates or pads s to exactly w display columns. Truncation has
// to be ANSI-aware since titles carry styling.
func padCell(s string, w int) string {
	s = ansi.Truncate(s, w, "…")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
