package operations

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/leengari/tableclean/internal/domain/errors"
	"github.com/leengari/tableclean/internal/domain/run"
	"github.com/leengari/tableclean/internal/domain/schema"
)

// The functions in this file modify the live table. Each one holds the write
// lock for the whole column pass and records a run.Mutation.

// StripColumn removes leading and trailing whitespace from every string in the column
func StripColumn(table *schema.Table, column string, r *run.Run) error {
	return mapStrings(table, column, run.MutationStrip, r, strings.TrimSpace)
}

// ReplaceInColumn replaces every occurrence of from with to inside the strings of the column
func ReplaceInColumn(table *schema.Table, column, from, to string, r *run.Run) error {
	return mapStrings(table, column, run.MutationReplace, r, func(s string) string {
		return strings.ReplaceAll(s, from, to)
	})
}

// FillColumn sets every missing cell of one column to value
func FillColumn(table *schema.Table, column string, value interface{}, r *run.Run) error {
	table.Lock()
	defer table.Unlock()

	changed, err := fillMissing(table, column, value)
	if err != nil {
		return err
	}
	record(table, column, run.MutationFill, changed, r)
	return nil
}

// CastColumnInt converts a numeric column to INT, truncating toward zero
// Fails if a missing value remains in the column.
func CastColumnInt(table *schema.Table, column string, r *run.Run) error {
	table.Lock()
	defer table.Unlock()

	col, err := table.Column(column)
	if err != nil {
		return err
	}

	converted := make([]int64, len(table.Rows))
	changed := 0
	for i, row := range table.Rows {
		val, ok := row.Get(column)
		if !ok {
			return errors.NewNotNullViolation(table.Name, column, row.Index)
		}
		f, ok := schema.ToFloat(val)
		if !ok {
			return errors.NewTypeMismatch(table.Name, column, val, "number", row.Index)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return errors.NewTypeMismatch(table.Name, column, val, "finite number", row.Index)
		}
		if !schema.FitsInt64(f) {
			return errors.NewTypeMismatch(table.Name, column, val, "int64-range number", row.Index)
		}
		converted[i] = int64(math.Trunc(f))
		if float64(converted[i]) != f {
			changed++
		}
	}

	for i := range table.Rows {
		table.Rows[i].Data[column] = converted[i]
	}
	col.Type = schema.ColumnTypeInt

	record(table, column, run.MutationCast, changed, r)
	return nil
}

// ClipColumn bounds every present value of a numeric column to [lower, upper]
func ClipColumn(table *schema.Table, column string, lower, upper float64, r *run.Run) error {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return fmt.Errorf("clip %s: bounds must be numbers, got [%v, %v]", column, lower, upper)
	}
	if lower > upper {
		return fmt.Errorf("clip %s: lower bound %v above upper bound %v", column, lower, upper)
	}

	table.Lock()
	defer table.Unlock()

	col, err := table.Column(column)
	if err != nil {
		return err
	}
	if !col.IsNumeric() {
		return errors.NewTypeMismatch(table.Name, column, nil, "numeric column", -1)
	}
	// fractional bounds cannot be held by an INT column
	if col.Type == schema.ColumnTypeInt && (lower != math.Trunc(lower) || upper != math.Trunc(upper)) {
		if err := table.SetColumnType(column, schema.ColumnTypeFloat); err != nil {
			return err
		}
	}

	changed := 0
	for i, row := range table.Rows {
		val, ok := row.Get(column)
		if !ok {
			continue
		}
		f, _ := schema.ToFloat(val)
		clipped := math.Min(math.Max(f, lower), upper)
		if clipped == f {
			continue
		}
		if col.Type == schema.ColumnTypeInt {
			table.Rows[i].Data[column] = int64(clipped)
		} else {
			table.Rows[i].Data[column] = clipped
		}
		changed++
	}

	record(table, column, run.MutationClip, changed, r)
	return nil
}

func mapStrings(table *schema.Table, column string, kind run.MutationKind, r *run.Run, fn func(string) string) error {
	table.Lock()
	defer table.Unlock()

	if _, err := table.Column(column); err != nil {
		return err
	}

	changed := 0
	for i, row := range table.Rows {
		val, ok := row.Get(column)
		if !ok {
			continue
		}
		s, ok := val.(string)
		if !ok {
			// non-string cells pass through untouched
			continue
		}
		if out := fn(s); out != s {
			table.Rows[i].Data[column] = out
			changed++
		}
	}

	record(table, column, kind, changed, r)
	return nil
}

func record(table *schema.Table, column string, kind run.MutationKind, changed int, r *run.Run) {
	if r != nil {
		slog.Debug("In-place operation", "kind", kind, "table", table.Name, "column", column, "changed", changed, "run_id", r.ID)
	}
	r.Record(run.Mutation{
		Kind:    kind,
		Table:   table.Name,
		Column:  column,
		Changed: changed,
	})
}
