package editor

import "github.com/charmbracelet/lipgloss"

const popupWidth = 40

func (m Model) renderPopup() string {
	st := m.cfg.Style
	switch m.popup {
	case popupJump:
		return st.Popup.Width(popupWidth).Render(
			st.LabelTitle.Render("Jump to byte") + "\n" + m.input.View(),
		)
	case popupSearch:
		return st.Popup.Width(popupWidth).Render(
			st.LabelTitle.Render("Search") + "\n" + m.input.View(),
		)
	case popupUnsaved:
		quit, cancel := "  Quit  ", "  Cancel  "
		if m.unsavedQuit {
			quit = st.Cursor.Render(quit)
		} else {
			cancel = st.Cursor.Render(cancel)
		}
		return st.Popup.Width(popupWidth).Render(
			st.LabelTitle.Render("Unsaved changes") + "\n" +
				"Quit without saving?\n\n" +
				lipgloss.PlaceHorizontal(popupWidth-2, lipgloss.Center, quit+"  "+cancel),
		)
	}
	return ""
}
