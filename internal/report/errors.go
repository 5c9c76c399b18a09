package report

import "errors"

var (
	// ErrUnknownFunc is returned by Aggregate for a reducer outside COUNT,
	// SUM, AVG, MAX and MIN.
	ErrUnknownFunc = errors.New("unknown aggregate function")

	// ErrChartConfig is returned when a chart configuration can not be built.
	ErrChartConfig = errors.New("error building chart config")
)
