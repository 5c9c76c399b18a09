// Package report groups and reduces flat answer rows, renders the result as
// a chart URL and exports raw rows to XLSX.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-form-keeper/models"
)

type stats struct {
	sum   float64
	count int
	max   float64
	min   float64
}

type group struct {
	values []string
	stats  stats
}

// Aggregate groups rows by the string form of the groupBy fields and reduces
// the numeric form of target within each group.
//
// Output order is the order in which groups were first seen. Each output row
// holds the group values joined by models.ReportSeparator under the joined
// group field names, and the aggregate under "<FUNC>_<target>".
//
// A target value that is not numeric coerces to NaN and poisons SUM, AVG,
// MAX and MIN of its group. COUNT never looks at the target value. Such rows
// are not skipped.
func Aggregate[R ~map[string]any](rows []R, groupBy []string, target string, fn models.AggregateFunc) ([]models.ReportRow, error) {
	if !fn.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunc, fn)
	}

	groups := make(map[groupKey]*group)
	order := make([]groupKey, 0)

	for _, row := range rows {
		values := make([]string, len(groupBy))
		for i, field := range groupBy {
			v, ok := row[field]
			values[i] = toJSString(v, ok)
		}
		key := newGroupKey(values)

		tv, ok := row[target]
		val := toJSNumber(tv, ok)

		g, seen := groups[key]
		if !seen {
			groups[key] = &group{
				values: values,
				stats:  stats{sum: val, count: 1, max: val, min: val},
			}
			order = append(order, key)
			continue
		}

		g.stats.sum += val
		g.stats.count++
		g.stats.max = math.Max(g.stats.max, val)
		g.stats.min = math.Min(g.stats.min, val)
	}

	groupField := strings.Join(groupBy, models.ReportSeparator)
	resultField := string(fn) + models.ReportSeparator + target

	result := make([]models.ReportRow, 0, len(order))
	for _, key := range order {
		g := groups[key]
		result = append(result, models.ReportRow{
			groupField:  strings.Join(g.values, models.ReportSeparator),
			resultField: reduce(g.stats, fn),
		})
	}

	return result, nil
}

func reduce(s stats, fn models.AggregateFunc) float64 {
	switch fn {
	case models.FuncCount:
		return float64(s.count)
	case models.FuncSum:
		return s.sum
	case models.FuncAvg:
		return s.sum / float64(s.count)
	case models.FuncMax:
		return s.max
	default:
		return s.min
	}
}
