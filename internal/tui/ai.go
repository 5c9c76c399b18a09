package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AIModel asks the server to generate a form from a prompt and opens the
// result as a new draft.
type AIModel struct {
	ctx    context.Context
	drafts service.ClientDraftService

	prompt     textarea.Model
	options    inputGroup
	onOptions  bool
	generating bool
	spinner    spinner.Model
	errMsg     string
}

func NewAIModel(ctx context.Context, drafts service.ClientDraftService) *AIModel {
	prompt := textarea.New()
	prompt.Placeholder = "Опишите форму, например: опрос удовлетворённости сотрудников"
	prompt.CharLimit = 4000
	prompt.SetWidth(60)
	prompt.SetHeight(6)

	language := newInput(models.DefaultAILanguage, 16)
	maxQuestions := newInput(strconv.Itoa(models.DefaultAIMaxQuestions), 2)

	return &AIModel{
		ctx:     ctx,
		drafts:  drafts,
		prompt:  prompt,
		options: inputGroup{items: []textinput.Model{language, maxQuestions}},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *AIModel) Init() tea.Cmd {
	m.errMsg = ""
	m.onOptions = false
	m.options.items[m.options.focus].Blur()
	return m.prompt.Focus()
}

func (m *AIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.generating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case draftLoadedMsg:
		m.generating = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.prompt.Reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageEditor, Payload: openDraft{key: msg.draft.Key}} }
	case tea.KeyMsg:
		if m.generating {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageForms} }
		case key.Matches(msg, keys.save):
			req, errMsg := m.request()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}
			m.errMsg = ""
			m.generating = true
			return m, tea.Batch(m.spinner.Tick, m.cmdGenerate(req))
		case key.Matches(msg, keys.tab) && !m.onOptions:
			m.onOptions = true
			m.prompt.Blur()
			m.options.setFocus(0)
			return m, nil
		case key.Matches(msg, keys.tab) && m.options.focus == len(m.options.items)-1,
			key.Matches(msg, keys.backtab) && m.onOptions && m.options.focus == 0:
			m.onOptions = false
			m.options.items[m.options.focus].Blur()
			return m, m.prompt.Focus()
		}
	}

	if m.onOptions {
		return m, m.options.update(msg)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *AIModel) request() (models.AIFormRequest, string) {
	req := models.AIFormRequest{
		Prompt:   strings.TrimSpace(m.prompt.Value()),
		Language: strings.TrimSpace(m.options.value(0)),
	}
	if req.Prompt == "" {
		return req, "Опишите форму"
	}

	if raw := strings.TrimSpace(m.options.value(1)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			return req, "Количество вопросов: от 1 до 50"
		}
		req.MaxQuestions = n
	}

	return req.WithDefaults(), ""
}

func (m *AIModel) View() string {
	var b strings.Builder
	b.WriteString(m.prompt.View())
	b.WriteString("\n\n")
	b.WriteString(m.options.view([]string{"Язык", "Вопросов"}))

	if m.generating {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Генерация...")
	}
	b.WriteString(renderStatus("", m.errMsg))

	return renderPage("ФОРМА С ПОМОЩЬЮ ИИ", b.String(), "tab: след. поле │ ctrl+s: сгенерировать │ esc: назад")
}

func (m *AIModel) cmdGenerate(req models.AIFormRequest) tea.Cmd {
	ctx, drafts := m.ctx, m.drafts

	return func() tea.Msg {
		draft, err := drafts.FromAI(ctx, req)
		return draftLoadedMsg{draft: draft, err: err}
	}
}
