package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/formshape"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type editorMode int

const (
	editorBrowse editorMode = iota
	editorAddQuestion
	editorMeta
)

// EditorModel edits a local draft in UI shape. Questions are only appended
// or removed; an existing question is never changed in place.
type EditorModel struct {
	ctx    context.Context
	drafts service.ClientDraftService
	ids    *utils.UUIDGenerator
	now    func() time.Time

	draft   models.Draft
	page    int
	idx     int
	dirty   bool
	leaving bool
	loading bool
	status  string
	errMsg  string

	mode     editorMode
	question inputGroup
	meta     inputGroup
	dataType int
	required bool
}

func NewEditorModel(ctx context.Context, drafts service.ClientDraftService) *EditorModel {
	return &EditorModel{
		ctx:    ctx,
		drafts: drafts,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		question: inputGroup{items: []textinput.Model{
			newInput("текст вопроса", 500),
			newInput("варианты через ;", 1000),
		}},
		meta: inputGroup{items: []textinput.Model{
			newInput("название", 200),
			newInput("описание", 1000),
		}},
	}
}

func (m *EditorModel) Init() tea.Cmd {
	return nil
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openDraft:
		m.draft = models.Draft{}
		m.page, m.idx = 0, 0
		m.dirty, m.leaving = false, false
		m.mode = editorBrowse
		m.status, m.errMsg = "", ""
		m.loading = true
		return m, m.cmdGet(msg.key)
	case draftLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.draft = msg.draft
		if len(m.draft.Data.Pages) == 0 {
			m.draft.Data = withPage(m.draft.Data)
		}
		return m, nil
	case draftSavedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.dirty = false
		m.status = "Черновик сохранён"
		return m, nil
	case publishDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.dirty = false
		m.draft.FormID = msg.form.ID
		m.errMsg = ""
		m.status = fmt.Sprintf("Форма %d опубликована", msg.form.ID)
		return m, nil
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch m.mode {
		case editorAddQuestion:
			return m.updateAddQuestion(msg)
		case editorMeta:
			return m.updateMeta(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// objects returns the questions of the current page in display order.
func (m *EditorModel) objects() []models.FormObject {
	if m.page >= len(m.draft.Data.Pages) {
		return nil
	}
	return formshape.SortObjectsByCreatedAt(m.draft.Data.Pages[m.page].Data)
}

func (m *EditorModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, keys.esc) {
		m.leaving = false
	}

	switch {
	case key.Matches(msg, keys.esc):
		if m.dirty && !m.leaving {
			m.leaving = true
			m.errMsg = "Есть несохранённые изменения: ctrl+s сохранить, esc ещё раз выйти"
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageDrafts} }
	case key.Matches(msg, keys.up):
		m.idx = moveIndex(m.idx, -1, len(m.objects()))
	case key.Matches(msg, keys.down):
		m.idx = moveIndex(m.idx, 1, len(m.objects()))
	case key.Matches(msg, keys.left):
		m.page = moveIndex(m.page, -1, len(m.draft.Data.Pages))
		m.idx = 0
	case key.Matches(msg, keys.right):
		m.page = moveIndex(m.page, 1, len(m.draft.Data.Pages))
		m.idx = 0
	case key.Matches(msg, keys.newPage):
		m.draft.Data = withPage(m.draft.Data)
		m.page = len(m.draft.Data.Pages) - 1
		m.idx = 0
		m.dirty = true
	case key.Matches(msg, keys.newItem):
		m.mode = editorAddQuestion
		m.question.reset()
		m.dataType = 0
		m.required = false
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		m.mode = editorMeta
		m.meta.reset()
		m.meta.setValue(0, m.draft.Title)
		m.meta.setValue(1, m.draft.Description)
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		objects := m.objects()
		if len(objects) == 0 {
			return m, nil
		}
		m.draft.Data = withoutObject(m.draft.Data, m.page, objects[m.idx].ID)
		m.idx = moveIndex(m.idx, 0, len(m.objects()))
		m.dirty = true
	case key.Matches(msg, keys.save):
		m.loading = true
		m.errMsg = ""
		return m, m.cmdSave()
	case key.Matches(msg, keys.publish):
		if m.draft.Data.QuestionCount() == 0 {
			m.errMsg = "В форме нет вопросов"
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		m.status = ""
		return m, m.cmdPublish()
	}

	return m, nil
}

func (m *EditorModel) updateAddQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = editorBrowse
		return m, nil
	case msg.String() == "ctrl+t":
		m.dataType = (m.dataType + 1) % len(uiDataTypes)
		return m, nil
	case key.Matches(msg, keys.required):
		m.required = !m.required
		return m, nil
	case key.Matches(msg, keys.enter):
		text := strings.TrimSpace(m.question.value(0))
		if text == "" {
			m.errMsg = "Текст вопроса обязателен"
			return m, nil
		}
		object := newFormObject(m.ids.Generate(), text, m.question.value(1), uiDataTypes[m.dataType], m.required, m.now().UnixMilli())
		m.draft.Data = withObject(m.draft.Data, m.page, object)
		m.idx = len(m.objects()) - 1
		m.dirty = true
		m.errMsg = ""
		m.mode = editorBrowse
		return m, nil
	}

	return m, m.question.update(msg)
}

func (m *EditorModel) updateMeta(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = editorBrowse
		return m, nil
	case key.Matches(msg, keys.enter):
		title := strings.TrimSpace(m.meta.value(0))
		if title == "" {
			m.errMsg = "Название обязательно"
			return m, nil
		}
		m.draft.Title = title
		m.draft.Description = strings.TrimSpace(m.meta.value(1))
		m.dirty = true
		m.errMsg = ""
		m.mode = editorBrowse
		return m, nil
	}

	return m, m.meta.update(msg)
}

func (m *EditorModel) View() string {
	title := "РЕДАКТОР"
	if m.loading && m.draft.Key == "" {
		return renderPage(title, "Загрузка...", "esc: назад")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.draft.Title))
	if m.draft.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.draft.Description)
	}
	if m.draft.FormID != 0 {
		fmt.Fprintf(&b, "\nФорма на сервере: %d", m.draft.FormID)
	}
	if m.dirty {
		b.WriteString("\n(есть несохранённые изменения)")
	}
	fmt.Fprintf(&b, "\n\nСтраница %d из %d\n\n", m.page+1, len(m.draft.Data.Pages))

	objects := m.objects()
	if len(objects) == 0 {
		b.WriteString("Вопросов нет")
	} else {
		rows := make([][]string, 0, len(objects))
		for _, o := range objects {
			rows = append(rows, []string{fitText(o.Que, 40), objectKind(o), yesNo(o.Required)})
		}
		b.WriteString(renderTable([]string{"Вопрос", "Тип", "Обяз."}, rows, m.idx))
	}

	hotKeys := "n: вопрос │ x: удалить │ e: название │ ←/→: страница │ ctrl+n: новая страница\n" +
		"  ctrl+s: сохранить │ p: опубликовать │ esc: назад"

	switch m.mode {
	case editorAddQuestion:
		b.WriteString("\n\nНовый вопрос\n")
		b.WriteString(m.question.view([]string{"Вопрос", "Варианты"}))
		fmt.Fprintf(&b, "\nТип данных: %s   Обязательный: %s", uiDataTypes[m.dataType], yesNo(m.required))
		hotKeys = "tab: след. поле │ ctrl+t: тип данных │ ctrl+r: обязательный │ enter: добавить │ esc: отмена"
	case editorMeta:
		b.WriteString("\n\n")
		b.WriteString(m.meta.view([]string{"Название", "Описание"}))
		hotKeys = "tab: след. поле │ enter: применить │ esc: отмена"
	}

	if m.loading {
		b.WriteString("\n\n[Сохранение...]")
	}
	b.WriteString(renderStatus(m.status, m.errMsg))

	return renderPage(title, b.String(), hotKeys)
}

func objectKind(o models.FormObject) string {
	if o.Type == models.FormObjectMulti {
		return fmt.Sprintf("выбор (%d)", len(o.Choices))
	}
	return string(o.DataType)
}

func (m *EditorModel) cmdGet(draftKey string) tea.Cmd {
	ctx, drafts := m.ctx, m.drafts

	return func() tea.Msg {
		draft, err := drafts.Get(ctx, draftKey)
		return draftLoadedMsg{draft: draft, err: err}
	}
}

func (m *EditorModel) cmdSave() tea.Cmd {
	ctx, drafts := m.ctx, m.drafts
	draft := m.draft
	draft.Data = withoutEmptyPages(draft.Data)

	return func() tea.Msg {
		return draftSavedMsg{err: drafts.Save(ctx, draft)}
	}
}

func (m *EditorModel) cmdPublish() tea.Cmd {
	ctx, drafts := m.ctx, m.drafts
	draft := m.draft
	draft.Data = withoutEmptyPages(draft.Data)

	return func() tea.Msg {
		if err := drafts.Save(ctx, draft); err != nil {
			return publishDoneMsg{err: err}
		}
		return cmdPublish(ctx, drafts, draft.Key)()
	}
}
