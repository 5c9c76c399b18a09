package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const inputWidth = 40

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = inputWidth
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newInput(placeholder, 72)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// inputGroup is a list of text inputs with one focused at a time.
type inputGroup struct {
	items []textinput.Model
	focus int
}

func (g *inputGroup) value(i int) string {
	return g.items[i].Value()
}

func (g *inputGroup) setValue(i int, v string) {
	g.items[i].SetValue(v)
}

func (g *inputGroup) focusNext() {
	g.setFocus((g.focus + 1) % len(g.items))
}

func (g *inputGroup) focusPrev() {
	g.setFocus((g.focus - 1 + len(g.items)) % len(g.items))
}

func (g *inputGroup) setFocus(i int) {
	g.items[g.focus].Blur()
	g.focus = i
	g.items[g.focus].Focus()
}

func (g *inputGroup) reset() {
	for i := range g.items {
		g.items[i].Reset()
	}
	g.setFocus(0)
}

// update moves focus on tab and shift+tab and forwards everything else to
// the focused input.
func (g *inputGroup) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			g.focusNext()
			return nil
		case key.Matches(keyMsg, keys.backtab):
			g.focusPrev()
			return nil
		}
	}

	var cmd tea.Cmd
	g.items[g.focus], cmd = g.items[g.focus].Update(msg)
	return cmd
}

func (g *inputGroup) view(labels []string) string {
	width := lipgloss.Width("Поле")
	for _, l := range labels {
		if w := lipgloss.Width(l); w > width {
			width = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s │ Значение\n", "Поле", strings.Repeat(" ", width-lipgloss.Width("Поле")))
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, in := range g.items {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(label)))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
