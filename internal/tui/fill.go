package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/formshape"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FillModel shows a form page by page and submits the answers. Text
// questions share one input widget that is bound to the focused question.
type FillModel struct {
	ctx   context.Context
	forms service.ClientFormService

	form    models.Form
	pages   [][]*questionInput
	page    int
	focus   int
	input   textinput.Model
	loading bool
	sending bool
	done    bool
	errMsg  string
}

func NewFillModel(ctx context.Context, forms service.ClientFormService) *FillModel {
	return &FillModel{
		ctx:   ctx,
		forms: forms,
		input: newInput("ответ", 1000),
	}
}

func (m *FillModel) Init() tea.Cmd {
	return nil
}

func (m *FillModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openForm:
		*m = FillModel{ctx: m.ctx, forms: m.forms, input: m.input, loading: true}
		m.input.Reset()
		return m, m.cmdLoad(msg.formID)
	case formLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.form = msg.form
		m.pages = newQuestionInputs(msg.form)
		m.bindInput()
		return m, textinput.Blink
	case submitDoneMsg:
		m.sending = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.done = true
		m.errMsg = ""
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *FillModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		return m, func() tea.Msg { return NavigateTo{Page: pageForms} }
	}
	if m.loading || m.sending || m.done || len(m.pages) == 0 {
		return m, nil
	}

	current := m.current()
	switch {
	case key.Matches(msg, keys.save):
		m.storeInput()
		answers, err := collectAnswers(m.pages)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.sending = true
		return m, m.cmdSubmit(answers)
	case key.Matches(msg, keys.tab):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.moveFocus(-1)
		return m, nil
	case msg.String() == "pgdown":
		m.movePage(1)
		return m, nil
	case msg.String() == "pgup":
		m.movePage(-1)
		return m, nil
	}

	if current == nil {
		return m, nil
	}

	if current.question.Type.IsMulti() {
		switch {
		case key.Matches(msg, keys.up):
			current.cursor = moveIndex(current.cursor, -1, len(current.question.Choices))
		case key.Matches(msg, keys.down):
			current.cursor = moveIndex(current.cursor, 1, len(current.question.Choices))
		case key.Matches(msg, keys.space), key.Matches(msg, keys.enter):
			current.pick()
		}
		return m, nil
	}

	if key.Matches(msg, keys.enter) {
		m.moveFocus(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	current.text = m.input.Value()
	current.touched = true
	return m, cmd
}

func (m *FillModel) current() *questionInput {
	if m.page >= len(m.pages) || m.focus >= len(m.pages[m.page]) {
		return nil
	}
	return m.pages[m.page][m.focus]
}

func (m *FillModel) storeInput() {
	if in := m.current(); in != nil && !in.question.Type.IsMulti() {
		in.text = m.input.Value()
	}
}

// bindInput loads the focused text question into the shared input widget.
func (m *FillModel) bindInput() {
	in := m.current()
	if in == nil || in.question.Type.IsMulti() {
		m.input.Blur()
		return
	}
	m.input.SetValue(in.text)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *FillModel) moveFocus(delta int) {
	m.storeInput()
	n := len(m.pages[m.page])
	if n == 0 {
		return
	}
	m.focus = (m.focus + delta + n) % n
	m.bindInput()
}

func (m *FillModel) movePage(delta int) {
	m.storeInput()
	m.page = moveIndex(m.page, delta, len(m.pages))
	m.focus = 0
	m.bindInput()
}

func (m *FillModel) View() string {
	title := "ЗАПОЛНЕНИЕ ФОРМЫ"
	switch {
	case m.loading:
		return renderPage(title, "Загрузка...", "esc: назад")
	case m.done:
		return renderPage(title, statusStyle.Render("Ответы отправлены. Спасибо!"), "esc: к списку форм")
	case len(m.pages) == 0:
		return renderPage(title, renderStatus("", m.errMsg), "esc: назад")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.form.Title))
	if m.form.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.form.Description)
	}
	fmt.Fprintf(&b, "\n\nСтраница %d из %d\n", m.page+1, len(m.pages))

	for i, in := range m.pages[m.page] {
		b.WriteString("\n")
		b.WriteString(m.renderQuestion(in, i == m.focus))
	}

	if m.sending {
		b.WriteString("\n\n[Отправка...]")
	}
	b.WriteString(renderStatus("", m.errMsg))

	return renderPage(title, b.String(),
		"tab: след. вопрос │ ↑/↓ + space: выбор │ pgup/pgdown: страница │ ctrl+s: отправить │ esc: назад")
}

func (m *FillModel) renderQuestion(in *questionInput, focused bool) string {
	var b strings.Builder

	marker := " "
	if focused {
		marker = ">"
	}
	b.WriteString(marker)
	b.WriteString(" ")
	b.WriteString(in.question.Text)
	if formshape.RequiredFromOptional(in.question.Optional) {
		b.WriteString(" *")
	}
	b.WriteString("\n")

	if !in.question.Type.IsMulti() {
		b.WriteString("    ")
		if focused {
			b.WriteString("[" + m.input.View() + "]")
		} else {
			b.WriteString("[" + in.text + "]")
		}
		b.WriteString("\n")
		return b.String()
	}

	lb, rb := "(", ")"
	if in.question.Type == models.QuestionCheckbox {
		lb, rb = "[", "]"
	}
	for i, choice := range in.question.Choices {
		mark := " "
		if in.chosen[i] {
			mark = "x"
		}
		line := fmt.Sprintf("    %s%s%s %s", lb, mark, rb, choice)
		if focused && i == in.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *FillModel) cmdLoad(formID int64) tea.Cmd {
	ctx := m.ctx
	forms := m.forms

	return func() tea.Msg {
		form, err := forms.Get(ctx, formID)
		return formLoadedMsg{form: form, err: err}
	}
}

func (m *FillModel) cmdSubmit(answers models.Answers) tea.Cmd {
	ctx := m.ctx
	forms := m.forms
	formID := m.form.ID

	return func() tea.Msg {
		return submitDoneMsg{err: forms.Submit(ctx, formID, answers)}
	}
}
