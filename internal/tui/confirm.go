package tui

// confirmModel is the yes/no overlay shown before destructive actions.
type confirmModel struct {
	action string
	target string
}

func (m confirmModel) View() string {
	content := m.action + " \"" + m.target + "\"?\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
