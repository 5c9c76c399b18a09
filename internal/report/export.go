package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Sheet1"

// Column is one exported column: Key selects the row value, Title is the
// header text.
type Column struct {
	Key   string
	Title string
}

// WriteXLSX writes rows as a single-sheet workbook with a header row.
func WriteXLSX(w io.Writer, columns []Column, rows []models.ResultRow) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, 0, len(columns))
	for _, column := range columns {
		header = append(header, column.Title)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("error writing xlsx header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("error addressing xlsx row: %w", err)
		}

		values := make([]any, 0, len(columns))
		for _, column := range columns {
			values = append(values, cellValue(row[column.Key]))
		}
		if err = f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return fmt.Errorf("error writing xlsx row: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("error writing xlsx workbook: %w", err)
	}

	return nil
}

func cellValue(v any) any {
	switch value := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(value)
	default:
		return value
	}
}
