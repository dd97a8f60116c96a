// Package stats computes column statistics over the present values of a table.
// The arithmetic is delegated to gota series.
package stats

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/series"

	"github.com/leengari/tableclean/internal/domain/data"
	"github.com/leengari/tableclean/internal/domain/errors"
	"github.com/leengari/tableclean/internal/domain/schema"
)

// DescribeLabels are the row labels of a Describe result, in order
var DescribeLabels = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Mean returns the arithmetic mean of values
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.ErrNoValues
	}
	return series.Floats(values).Mean(), nil
}

// PresentFloats returns the present values of a numeric column
func PresentFloats(t *schema.Table, column string) ([]float64, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	if !col.IsNumeric() {
		return nil, fmt.Errorf("column %s is %s, not numeric", column, col.Type)
	}

	var out []float64
	for _, row := range t.Rows {
		val, ok := row.Get(column)
		if !ok {
			continue
		}
		if f, ok := schema.ToFloat(val); ok {
			out = append(out, f)
		}
	}
	return out, nil
}

// ColumnMean returns the mean of the present values of a numeric column
func ColumnMean(t *schema.Table, column string) (float64, error) {
	values, err := PresentFloats(t, column)
	if err != nil {
		return 0, err
	}
	mean, err := Mean(values)
	if err != nil {
		return 0, fmt.Errorf("mean of %s.%s: %w", t.Name, column, err)
	}
	return mean, nil
}

// Describe summarizes every numeric column of t
// The result has one row per statistic and one FLOAT column per numeric column.
// A column with no present values gets count 0 and missing statistics.
func Describe(t *schema.Table) (*schema.Table, error) {
	t.RLock()
	defer t.RUnlock()

	var columns []schema.Column
	cells := make([]map[string]interface{}, len(DescribeLabels))
	for i := range cells {
		cells[i] = make(map[string]interface{})
	}

	for _, col := range t.Schema.Columns {
		if !col.IsNumeric() {
			continue
		}
		columns = append(columns, schema.Column{Name: col.Name, Type: schema.ColumnTypeFloat})

		values, err := PresentFloats(t, col.Name)
		if err != nil {
			return nil, err
		}
		cells[0][col.Name] = float64(len(values))
		if len(values) == 0 {
			continue
		}

		s := series.Floats(values)
		var std interface{}
		if len(values) > 1 {
			std = s.StdDev()
		}
		cells[1][col.Name] = s.Mean()
		cells[2][col.Name] = std
		cells[3][col.Name] = s.Min()
		ordered := s.Subset(s.Order(false)).Float()
		cells[4][col.Name] = Quantile(ordered, 0.25)
		cells[5][col.Name] = s.Median()
		cells[6][col.Name] = Quantile(ordered, 0.75)
		cells[7][col.Name] = s.Max()
	}

	rows := make([]data.Row, len(DescribeLabels))
	for i := range rows {
		rows[i] = data.NewRow(i, cells[i])
	}
	return schema.NewTable(t.Name+"_describe", columns, rows)
}

// Quantile interpolates linearly between the two closest ranks of sorted
func Quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}
