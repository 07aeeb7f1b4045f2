package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/nibble/internal/decode"
)

// Style controls the editor's rendering.
type Style struct {
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style
	Address     lipgloss.Style

	Null       lipgloss.Style
	Printable  lipgloss.Style
	Unicode    lipgloss.Style
	Whitespace lipgloss.Style
	Control    lipgloss.Style
	Fill       lipgloss.Style
	Unknown    lipgloss.Style

	Cursor      lipgloss.Style
	GhostCursor lipgloss.Style

	Label      lipgloss.Style
	LabelTitle lipgloss.Style
	Popup      lipgloss.Style
}

func DefaultStyle() Style {
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	return Style{
		Pane:        border,
		FocusedPane: border.BorderForeground(lipgloss.Color("11")),
		Address:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Null:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Printable:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Unicode:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Whitespace: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Control:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Fill:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Unknown:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		Cursor:      lipgloss.NewStyle().Reverse(true),
		GhostCursor: lipgloss.NewStyle().Underline(true),

		Label:      border.BorderForeground(lipgloss.Color("240")),
		LabelTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Popup:      border.BorderForeground(lipgloss.Color("11")).Padding(0, 1),
	}
}

// categoryStyle maps a decoded byte category to its display style.
func (st Style) categoryStyle(cat decode.Category) lipgloss.Style {
	switch cat {
	case decode.Null:
		return st.Null
	case decode.Printable:
		return st.Printable
	case decode.Unicode:
		return st.Unicode
	case decode.Whitespace:
		return st.Whitespace
	case decode.Control:
		return st.Control
	case decode.Fill:
		return st.Fill
	default:
		return st.Unknown
	}
}
