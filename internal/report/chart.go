package report

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/MKhiriev/go-form-keeper/models"
	quickchartgo "github.com/henomis/quickchart-go"
)

type chartConfig struct {
	Type string    `json:"type"`
	Data chartData `json:"data"`
}

type chartData struct {
	Labels   []string       `json:"labels"`
	DataSets []chartDataset `json:"datasets"`
}

type chartDataset struct {
	Label string `json:"label"`
	Data  []any  `json:"data"`
}

// ChartURL renders aggregated rows as a quickchart.io image URL. Table
// reports have no chart and yield an empty URL.
func ChartURL(req models.ReportRequest, rows []models.ReportRow) (string, error) {
	if req.ChartType != models.ChartBar && req.ChartType != models.ChartPie {
		return "", nil
	}

	groupField := req.GroupFieldName()
	resultField := req.ResultFieldName()

	config := chartConfig{
		Type: string(req.ChartType),
		Data: chartData{
			Labels:   make([]string, 0, len(rows)),
			DataSets: []chartDataset{{Label: resultField, Data: make([]any, 0, len(rows))}},
		},
	}

	for _, row := range rows {
		config.Data.Labels = append(config.Data.Labels, fmt.Sprint(row[groupField]))
		config.Data.DataSets[0].Data = append(config.Data.DataSets[0].Data, chartValue(row[resultField]))
	}

	bytes, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrChartConfig, err)
	}

	qc := quickchartgo.New()
	qc.Config = string(bytes)
	url, err := qc.GetUrl()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrChartConfig, err)
	}

	return url, nil
}

// chartValue drops non-finite aggregates, JSON has no spelling for them.
func chartValue(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil
	}

	return v
}
