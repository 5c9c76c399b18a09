package tui

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	reportFuncs  = []models.AggregateFunc{models.FuncCount, models.FuncSum, models.FuncAvg, models.FuncMax, models.FuncMin}
	reportCharts = []models.ChartType{models.ChartTable, models.ChartBar, models.ChartPie}
)

// ReportModel builds a group-by query over the answers of a form and shows
// the aggregated rows.
type ReportModel struct {
	ctx     context.Context
	reports service.ClientReportService

	formID  int64
	fields  []models.Field
	idx     int
	groupBy []string
	target  string
	fn      int
	chart   int

	result  *service.ClientReport
	loading bool
	status  string
	errMsg  string
}

func NewReportModel(ctx context.Context, reports service.ClientReportService) *ReportModel {
	return &ReportModel{ctx: ctx, reports: reports}
}

func (m *ReportModel) Init() tea.Cmd {
	return nil
}

func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openForm:
		*m = ReportModel{ctx: m.ctx, reports: m.reports, formID: msg.formID, loading: true}
		return m, m.cmdFields()
	case reportFieldsMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.fields = append([]models.Field{{Name: models.UserIDColumn, Text: "Пользователь", DataType: models.DataNumber}}, msg.fields...)
		m.target = models.UserIDColumn
		return m, nil
	case reportDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.result = &msg.report
		return m, nil
	case refreshDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Результаты обновлены"
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.what + " скопирована в буфер обмена"
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *ReportModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		return m, func() tea.Msg { return NavigateTo{Page: pageForms} }
	}
	if m.loading || len(m.fields) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		m.idx = moveIndex(m.idx, -1, len(m.fields))
	case key.Matches(msg, keys.down):
		m.idx = moveIndex(m.idx, 1, len(m.fields))
	case key.Matches(msg, keys.space):
		m.toggleGroupBy(m.fields[m.idx].Name)
	case msg.String() == "t":
		m.target = m.fields[m.idx].Name
	case msg.String() == "f":
		m.fn = (m.fn + 1) % len(reportFuncs)
	case msg.String() == "g":
		m.chart = (m.chart + 1) % len(reportCharts)
	case key.Matches(msg, keys.enter):
		if len(m.groupBy) == 0 {
			m.errMsg = "Выберите хотя бы одно поле группировки"
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		m.loading = true
		return m, m.cmdQuery(m.request())
	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.copy):
		if m.result == nil || m.result.ChartURL == "" {
			m.errMsg = "Ссылки на диаграмму нет"
			return m, nil
		}
		return m, cmdCopy("Ссылка на диаграмму", m.result.ChartURL)
	}

	return m, nil
}

func (m *ReportModel) toggleGroupBy(name string) {
	if i := slices.Index(m.groupBy, name); i >= 0 {
		m.groupBy = slices.Delete(m.groupBy, i, i+1)
		return
	}
	m.groupBy = append(m.groupBy, name)
}

func (m *ReportModel) request() models.ReportRequest {
	return models.ReportRequest{
		GroupBy:   slices.Clone(m.groupBy),
		Target:    m.target,
		Func:      reportFuncs[m.fn],
		ChartType: reportCharts[m.chart],
	}
}

func (m *ReportModel) View() string {
	var b strings.Builder

	rows := make([][]string, 0, len(m.fields))
	for _, f := range m.fields {
		group := ""
		if i := slices.Index(m.groupBy, f.Name); i >= 0 {
			group = strconv.Itoa(i + 1)
		}
		rows = append(rows, []string{f.Name, fitText(f.Text, 30), group, yesNo(f.Name == m.target)})
	}
	b.WriteString(renderTable([]string{"Колонка", "Вопрос", "Группа", "Цель"}, rows, m.idx))
	b.WriteString("\n\nФункция: ")
	b.WriteString(string(reportFuncs[m.fn]))
	b.WriteString("   Диаграмма: ")
	b.WriteString(string(reportCharts[m.chart]))

	if m.loading {
		b.WriteString("\n\nЗагрузка...")
	}
	if m.result != nil && !m.loading {
		b.WriteString("\n\n")
		b.WriteString(renderReport(m.request(), *m.result))
	}
	b.WriteString(renderStatus(m.status, m.errMsg))

	return renderPage("ОТЧЁТ", b.String(),
		"space: группировка │ t: цель │ f: функция │ g: диаграмма │ enter: построить\n"+
			"  c: копировать ссылку │ u: обновить результаты │ esc: назад")
}

func renderReport(req models.ReportRequest, report service.ClientReport) string {
	var b strings.Builder

	if report.Local {
		b.WriteString("Источник: локальный расчёт по данным от ")
		b.WriteString(report.FetchedAt.Local().Format("02.01.2006 15:04"))
	} else {
		b.WriteString("Источник: сервер")
	}
	b.WriteString("\n\n")

	if len(report.Rows) == 0 {
		b.WriteString("Ответов нет")
	} else {
		groupField, resultField := req.GroupFieldName(), req.ResultFieldName()
		rows := make([][]string, 0, len(report.Rows))
		for _, row := range report.Rows {
			rows = append(rows, []string{formatCell(row[groupField]), formatCell(row[resultField])})
		}
		b.WriteString(renderTable([]string{groupField, resultField}, rows, -1))
	}

	if report.ChartURL != "" {
		b.WriteString("\n\nДиаграмма: ")
		b.WriteString(fitText(report.ChartURL, 60))
	}

	return b.String()
}

func (m *ReportModel) cmdFields() tea.Cmd {
	ctx, reports, formID := m.ctx, m.reports, m.formID

	return func() tea.Msg {
		fields, err := reports.Fields(ctx, formID)
		return reportFieldsMsg{fields: fields, err: err}
	}
}

func (m *ReportModel) cmdQuery(req models.ReportRequest) tea.Cmd {
	ctx, reports, formID := m.ctx, m.reports, m.formID

	return func() tea.Msg {
		report, err := reports.Query(ctx, formID, req)
		return reportDoneMsg{report: report, err: err}
	}
}

func (m *ReportModel) cmdRefresh() tea.Cmd {
	ctx, reports, formID := m.ctx, m.reports, m.formID

	return func() tea.Msg {
		return refreshDoneMsg{err: reports.RefreshResults(ctx, formID)}
	}
}
