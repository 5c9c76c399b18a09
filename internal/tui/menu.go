package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title string
	page  string // empty quits the program
}

// MenuModel is the entry page of the login flow.
type MenuModel struct {
	items  []menuItem
	cursor int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{items: []menuItem{
		{title: "Войти", page: pageLogin},
		{title: "Зарегистрироваться", page: pageRegister},
		{title: "Выход"},
	}}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.cursor = moveIndex(m.cursor, -1, len(m.items))
	case key.Matches(keyMsg, keys.down):
		m.cursor = moveIndex(m.cursor, 1, len(m.items))
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		target := m.items[m.cursor].page
		if target == "" {
			return m, tea.Quit
		}
		return m, func() tea.Msg { return NavigateTo{Page: target} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	rows := make([][]string, len(m.items))
	for i, item := range m.items {
		rows[i] = []string{item.title}
	}

	return renderPage(
		"GoFormKeeper",
		renderTable([]string{"Действие"}, rows, m.cursor),
		"enter: выбрать │ ↑/↓: навигация │ v: версия │ q: выход",
	)
}
