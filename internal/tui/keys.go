package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	space    key.Binding
	save     key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	refresh  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	report   key.Binding
	share    key.Binding
	drafts   key.Binding
	ai       key.Binding
	publish  key.Binding
	required key.Binding
	newPage  key.Binding
	yes      key.Binding
	no       key.Binding

	interrupt key.Binding
	version   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	space:    key.NewBinding(key.WithKeys(" ")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	refresh:  key.NewBinding(key.WithKeys("u")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("x")),
	copy:     key.NewBinding(key.WithKeys("c")),
	report:   key.NewBinding(key.WithKeys("r")),
	share:    key.NewBinding(key.WithKeys("s")),
	drafts:   key.NewBinding(key.WithKeys("d")),
	ai:       key.NewBinding(key.WithKeys("a")),
	publish:  key.NewBinding(key.WithKeys("p")),
	required: key.NewBinding(key.WithKeys("ctrl+r")),
	newPage:  key.NewBinding(key.WithKeys("ctrl+n")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),

	interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	version:   key.NewBinding(key.WithKeys("v")),
}
