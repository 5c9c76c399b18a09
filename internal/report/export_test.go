package report

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	columns := []Column{
		{Key: "user_id", Title: "User"},
		{Key: "question_1", Title: "Name"},
		{Key: "question_2", Title: "Agree"},
	}
	rows := []models.ResultRow{
		{"user_id": 7.0, "question_1": "Ann", "question_2": true},
		{"user_id": 8.0, "question_1": nil, "question_2": false},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, columns, rows))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"User", "Name", "Agree"}, got[0])
	assert.Equal(t, []string{"7", "Ann", "true"}, got[1])
	assert.Equal(t, "8", got[2][0])
	assert.Equal(t, "false", got[2][2])
}

func TestWriteXLSX_NoRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, []Column{{Key: "user_id", Title: "User"}}, nil))
	assert.NotZero(t, buf.Len())
}
