package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ShareModel grants other users access to an owned form.
type ShareModel struct {
	ctx   context.Context
	forms service.ClientFormService

	formID   int64
	ownerID  int64
	users    []models.UserSummary
	selected map[int64]bool
	idx      int
	loading  bool
	status   string
	errMsg   string
}

func NewShareModel(ctx context.Context, forms service.ClientFormService) *ShareModel {
	return &ShareModel{ctx: ctx, forms: forms}
}

func (m *ShareModel) Init() tea.Cmd {
	return nil
}

func (m *ShareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openShare:
		*m = ShareModel{
			ctx:      m.ctx,
			forms:    m.forms,
			formID:   msg.formID,
			ownerID:  msg.ownerID,
			selected: make(map[int64]bool),
			loading:  true,
		}
		return m, m.cmdUsers()
	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.users = m.users[:0]
		for _, u := range msg.users {
			if u.ID != m.ownerID {
				m.users = append(m.users, u)
			}
		}
		return m, nil
	case shareDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		clear(m.selected)
		m.errMsg = ""
		m.status = fmt.Sprintf("Доступ выдан: %d", msg.count)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageForms} }
		case m.loading || len(m.users) == 0:
			return m, nil
		case key.Matches(msg, keys.up):
			m.idx = moveIndex(m.idx, -1, len(m.users))
		case key.Matches(msg, keys.down):
			m.idx = moveIndex(m.idx, 1, len(m.users))
		case key.Matches(msg, keys.space):
			id := m.users[m.idx].ID
			m.selected[id] = !m.selected[id]
		case key.Matches(msg, keys.enter):
			ids := m.selectedIDs()
			if len(ids) == 0 {
				m.errMsg = "Никто не выбран"
				return m, nil
			}
			m.loading = true
			m.status = ""
			return m, m.cmdShare(ids)
		}
	}

	return m, nil
}

func (m *ShareModel) selectedIDs() []int64 {
	ids := make([]int64, 0, len(m.selected))
	for _, u := range m.users {
		if m.selected[u.ID] {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

func (m *ShareModel) View() string {
	body := "Загрузка..."
	if !m.loading {
		rows := make([][]string, 0, len(m.users))
		for _, u := range m.users {
			mark := "[ ]"
			if m.selected[u.ID] {
				mark = "[x]"
			}
			rows = append(rows, []string{mark, strconv.FormatInt(u.ID, 10), u.Username, u.Name})
		}
		body = renderTable([]string{"", "ID", "Логин", "Имя"}, rows, m.idx)
	}
	body += renderStatus(m.status, m.errMsg)

	return renderPage(fmt.Sprintf("ДОСТУП К ФОРМЕ %d", m.formID), body, "space: выбрать │ enter: выдать доступ │ esc: назад")
}

func (m *ShareModel) cmdUsers() tea.Cmd {
	ctx, forms := m.ctx, m.forms

	return func() tea.Msg {
		users, err := forms.Users(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m *ShareModel) cmdShare(ids []int64) tea.Cmd {
	ctx, forms, formID := m.ctx, m.forms, m.formID

	return func() tea.Msg {
		return shareDoneMsg{count: len(ids), err: forms.Share(ctx, formID, ids)}
	}
}
