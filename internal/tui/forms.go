package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type formScopeTab struct {
	scope adapter.FormScope
	title string
}

var formScopeTabs = []formScopeTab{
	{adapter.ScopeOwned, "Мои"},
	{adapter.ScopeActive, "Активные"},
	{adapter.ScopeShared, "Доступные мне"},
	{adapter.ScopeTemplates, "Шаблоны"},
}

// FormsModel is the home page of the main loop: the form list of one scope
// plus the entry points to every other page.
type FormsModel struct {
	ctx     context.Context
	forms   service.ClientFormService
	drafts  service.ClientDraftService
	session models.Session

	tab     int
	items   []models.Form
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewFormsModel(ctx context.Context, services *service.ClientServices, session models.Session) *FormsModel {
	return &FormsModel{
		ctx:     ctx,
		forms:   services.FormService,
		drafts:  services.DraftService,
		session: session,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *FormsModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *FormsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case formsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.forms
		m.idx = moveIndex(m.idx, 0, len(m.items))
		return m, nil
	case draftLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageEditor, Payload: openDraft{key: msg.draft.Key}} }
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.what + " скопирован в буфер обмена"
		m.errMsg = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *FormsModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		return m, func() tea.Msg { return LogoutRequested{} }
	case key.Matches(msg, keys.up):
		m.idx = moveIndex(m.idx, -1, len(m.items))
		return m, nil
	case key.Matches(msg, keys.down):
		m.idx = moveIndex(m.idx, 1, len(m.items))
		return m, nil
	case key.Matches(msg, keys.left), key.Matches(msg, keys.backtab):
		return m.switchTab(-1)
	case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
		return m.switchTab(1)
	case key.Matches(msg, keys.refresh):
		m.status = ""
		return m, m.Init()
	case key.Matches(msg, keys.drafts):
		return m, func() tea.Msg { return NavigateTo{Page: pageDrafts} }
	case key.Matches(msg, keys.ai):
		return m, func() tea.Msg { return NavigateTo{Page: pageAI} }
	}

	form, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		return m, func() tea.Msg { return NavigateTo{Page: pageFill, Payload: openForm{formID: form.ID}} }
	case key.Matches(msg, keys.copy):
		return m, cmdCopy("ID формы", strconv.FormatInt(form.ID, 10))
	}

	if form.OwnerID != m.session.UserID {
		if key.Matches(msg, keys.report, keys.share, keys.edit) {
			m.errMsg = "Доступно только владельцу формы"
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.report):
		return m, func() tea.Msg { return NavigateTo{Page: pageReport, Payload: openForm{formID: form.ID}} }
	case key.Matches(msg, keys.share):
		return m, func() tea.Msg {
			return NavigateTo{Page: pageShare, Payload: openShare{formID: form.ID, ownerID: form.OwnerID}}
		}
	case key.Matches(msg, keys.edit):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdEdit(form.ID))
	}

	return m, nil
}

func (m *FormsModel) switchTab(delta int) (tea.Model, tea.Cmd) {
	m.tab = (m.tab + delta + len(formScopeTabs)) % len(formScopeTabs)
	m.idx = 0
	m.items = nil
	m.status = ""
	return m, m.Init()
}

func (m *FormsModel) selected() (models.Form, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Form{}, false
	}
	return m.items[m.idx], true
}

func (m *FormsModel) View() string {
	var b strings.Builder

	for i, tab := range formScopeTabs {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == m.tab {
			b.WriteString(selectedStyle.Render("[" + tab.title + "]"))
		} else {
			b.WriteString(" " + tab.title + " ")
		}
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...")
	case len(m.items) == 0:
		b.WriteString("Форм нет")
	default:
		rows := make([][]string, 0, len(m.items))
		for _, f := range m.items {
			rows = append(rows, []string{
				strconv.FormatInt(f.ID, 10),
				fitText(f.Title, 32),
				strconv.Itoa(len(f.Questions())),
				formState(f),
				yesNo(f.OwnerID == m.session.UserID),
			})
		}
		b.WriteString(renderTable([]string{"ID", "Название", "Вопросов", "Статус", "Моя"}, rows, m.idx))
	}
	b.WriteString(renderStatus(m.status, m.errMsg))

	title := "ФОРМЫ"
	if m.session.Username != "" {
		title += " │ " + m.session.Username
	}

	return renderPage(title, b.String(),
		"←/→: раздел │ enter: заполнить │ r: отчёт │ s: доступ │ e: редактировать │ c: копировать ID\n"+
			"  d: черновики │ a: ИИ │ u: обновить │ L: выйти из аккаунта │ q: выход")
}

func formState(f models.Form) string {
	switch {
	case f.IsExpired:
		return "закрыта"
	case f.IsActive:
		return "активна"
	default:
		return "неактивна"
	}
}

func (m *FormsModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	forms := m.forms
	scope := formScopeTabs[m.tab].scope

	return func() tea.Msg {
		items, err := forms.List(ctx, scope)
		return formsLoadedMsg{forms: items, err: err}
	}
}

func (m *FormsModel) cmdEdit(formID int64) tea.Cmd {
	ctx := m.ctx
	drafts := m.drafts

	return func() tea.Msg {
		draft, err := drafts.Edit(ctx, formID)
		return draftLoadedMsg{draft: draft, err: err}
	}
}

func cmdCopy(what, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboard.WriteAll(value)}
	}
}
