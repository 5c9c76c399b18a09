package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DraftsModel lists local drafts. New drafts are named inline; publishing
// and deletion happen from the list.
type DraftsModel struct {
	ctx    context.Context
	drafts service.ClientDraftService

	items   []models.Draft
	idx     int
	loading bool
	status  string
	errMsg  string

	naming  bool
	title   textinput.Model
	confirm *confirmModel
}

func NewDraftsModel(ctx context.Context, drafts service.ClientDraftService) *DraftsModel {
	return &DraftsModel{
		ctx:    ctx,
		drafts: drafts,
		title:  newInput("название формы", 200),
	}
}

func (m *DraftsModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *DraftsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case draftsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.items = msg.drafts
		m.idx = moveIndex(m.idx, 0, len(m.items))
		return m, nil
	case draftLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageEditor, Payload: openDraft{key: msg.draft.Key}} }
	case publishDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Форма %d опубликована", msg.form.ID)
		return m, m.Init()
	case draftDeletedMsg:
		if msg.err != nil {
			m.loading = false
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Черновик удалён"
		return m, m.Init()
	case tea.KeyMsg:
		switch {
		case m.confirm != nil:
			return m.updateConfirm(msg)
		case m.naming:
			return m.updateNaming(msg)
		}
		return m.updateKeys(msg)
	}

	if m.naming {
		var cmd tea.Cmd
		m.title, cmd = m.title.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DraftsModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageForms} }
	case key.Matches(msg, keys.newItem):
		m.naming = true
		m.title.Reset()
		m.title.Focus()
		return m, textinput.Blink
	case m.loading || len(m.items) == 0:
		return m, nil
	case key.Matches(msg, keys.up):
		m.idx = moveIndex(m.idx, -1, len(m.items))
	case key.Matches(msg, keys.down):
		m.idx = moveIndex(m.idx, 1, len(m.items))
	case key.Matches(msg, keys.enter):
		draftKey := m.items[m.idx].Key
		return m, func() tea.Msg { return NavigateTo{Page: pageEditor, Payload: openDraft{key: draftKey}} }
	case key.Matches(msg, keys.publish):
		m.loading = true
		m.status = ""
		return m, cmdPublish(m.ctx, m.drafts, m.items[m.idx].Key)
	case key.Matches(msg, keys.delete):
		m.confirm = &confirmModel{action: "Удалить черновик", target: m.items[m.idx].Title}
	}

	return m, nil
}

func (m *DraftsModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = nil
		m.loading = true
		return m, m.cmdDelete(m.items[m.idx].Key)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirm = nil
	}
	return m, nil
}

func (m *DraftsModel) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.naming = false
		m.title.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		title := strings.TrimSpace(m.title.Value())
		if title == "" {
			m.errMsg = "Название обязательно"
			return m, nil
		}
		m.naming = false
		m.title.Blur()
		m.errMsg = ""
		m.loading = true
		return m, m.cmdNew(title)
	}

	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	return m, cmd
}

func (m *DraftsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(m.items) == 0:
		b.WriteString("Черновиков нет")
	default:
		rows := make([][]string, 0, len(m.items))
		for _, d := range m.items {
			formID := "-"
			if d.FormID != 0 {
				formID = strconv.FormatInt(d.FormID, 10)
			}
			rows = append(rows, []string{
				fitText(d.Title, 32),
				formID,
				strconv.Itoa(d.Data.QuestionCount()),
				d.UpdatedAt.Local().Format("02.01.2006 15:04"),
			})
		}
		b.WriteString(renderTable([]string{"Название", "Форма", "Вопросов", "Изменён"}, rows, m.idx))
	}

	if m.naming {
		b.WriteString("\n\nНовый черновик: [")
		b.WriteString(m.title.View())
		b.WriteString("]")
	}
	if m.confirm != nil {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}
	b.WriteString(renderStatus(m.status, m.errMsg))

	return renderPage("ЧЕРНОВИКИ", b.String(),
		"enter: открыть │ n: новый │ p: опубликовать │ x: удалить │ esc: назад")
}

func (m *DraftsModel) cmdLoad() tea.Cmd {
	ctx, drafts := m.ctx, m.drafts

	return func() tea.Msg {
		items, err := drafts.List(ctx)
		return draftsLoadedMsg{drafts: items, err: err}
	}
}

func (m *DraftsModel) cmdNew(title string) tea.Cmd {
	ctx, drafts := m.ctx, m.drafts

	return func() tea.Msg {
		draft, err := drafts.NewDraft(ctx, title, "")
		return draftLoadedMsg{draft: draft, err: err}
	}
}

func (m *DraftsModel) cmdDelete(draftKey string) tea.Cmd {
	ctx, drafts := m.ctx, m.drafts

	return func() tea.Msg {
		return draftDeletedMsg{err: drafts.Delete(ctx, draftKey)}
	}
}

func cmdPublish(ctx context.Context, drafts service.ClientDraftService, draftKey string) tea.Cmd {
	return func() tea.Msg {
		form, err := drafts.Publish(ctx, draftKey)
		return publishDoneMsg{form: form, err: err}
	}
}
