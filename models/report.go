package models

import "strings"

// ReportSeparator joins group-by field names and group values in report
// output rows.
const ReportSeparator = "_"

// AggregateFunc is one of the five supported reducers.
type AggregateFunc string

const (
	FuncCount AggregateFunc = "COUNT"
	FuncSum   AggregateFunc = "SUM"
	FuncAvg   AggregateFunc = "AVG"
	FuncMax   AggregateFunc = "MAX"
	FuncMin   AggregateFunc = "MIN"
)

// Valid reports whether f is one of the supported reducers.
func (f AggregateFunc) Valid() bool {
	switch f {
	case FuncCount, FuncSum, FuncAvg, FuncMax, FuncMin:
		return true
	}

	return false
}

// ChartType is the rendering requested for a report.
type ChartType string

const (
	ChartTable ChartType = "table"
	ChartBar   ChartType = "bar"
	ChartPie   ChartType = "pie"
)

// ReportRequest is a group-by/aggregate query over the answers of a form.
type ReportRequest struct {
	GroupBy   []string      `json:"groupBy" validate:"dive,required"`
	Target    string        `json:"target" validate:"required"`
	Func      AggregateFunc `json:"func" validate:"required,oneof=COUNT SUM AVG MAX MIN"`
	ChartType ChartType     `json:"chartType" validate:"omitempty,oneof=table bar pie"`
}

// GroupFieldName is the key under which the joined group value is emitted.
func (r ReportRequest) GroupFieldName() string {
	return strings.Join(r.GroupBy, ReportSeparator)
}

// ResultFieldName is the key under which the aggregate value is emitted.
func (r ReportRequest) ResultFieldName() string {
	return string(r.Func) + ReportSeparator + r.Target
}

// ReportRow is one aggregated output record.
type ReportRow map[string]any

// ReportResult is the response of POST /api/form/{id}/query.
type ReportResult struct {
	Rows     []ReportRow `json:"rows"`
	ChartURL string      `json:"chartUrl,omitempty"`
}
