package report

import (
	"math"
	"testing"

	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartURL_TableHasNoChart(t *testing.T) {
	url, err := ChartURL(models.ReportRequest{ChartType: models.ChartTable}, []models.ReportRow{{"g": "a"}})
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestChartURL_Bar(t *testing.T) {
	req := models.ReportRequest{GroupBy: []string{"g"}, Target: "v", Func: models.FuncSum, ChartType: models.ChartBar}
	rows := []models.ReportRow{{"g": "a", "SUM_v": 30.0}, {"g": "b", "SUM_v": math.NaN()}}

	url, err := ChartURL(req, rows)
	require.NoError(t, err)
	assert.Contains(t, url, "quickchart.io")
}

func TestChartValue(t *testing.T) {
	assert.Nil(t, chartValue(math.NaN()))
	assert.Nil(t, chartValue(math.Inf(1)))
	assert.Equal(t, 2.0, chartValue(2.0))
	assert.Equal(t, "x", chartValue("x"))
}
