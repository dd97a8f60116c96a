package operations

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leengari/tableclean/internal/domain/data"
	domainerrors "github.com/leengari/tableclean/internal/domain/errors"
	"github.com/leengari/tableclean/internal/domain/schema"
	"github.com/leengari/tableclean/internal/stats"
)

// FillNA returns a copy of the table with every missing cell set to value
func FillNA(table *schema.Table, value interface{}) (*schema.Table, error) {
	out := table.Copy()
	for _, col := range out.ColumnNames() {
		if err := fillColumnUnsafe(out, col, value); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ReplaceMissing returns a copy of the table with every remaining missing cell set to value
func ReplaceMissing(table *schema.Table, value interface{}) (*schema.Table, error) {
	return FillNA(table, value)
}

// FillNAMean returns a copy with the missing cells of each numeric column set to that column's mean
// Non-numeric columns are left alone, as are numeric columns with no present values.
func FillNAMean(table *schema.Table) (*schema.Table, error) {
	out := table.Copy()
	for _, col := range out.Schema.Columns {
		if !col.IsNumeric() {
			continue
		}
		mean, err := stats.ColumnMean(out, col.Name)
		if errors.Is(err, domainerrors.ErrNoValues) {
			slog.Debug("FillNAMean: column has no values", "table", out.Name, "column", col.Name)
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := fillColumnUnsafe(out, col.Name, mean); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DropNA returns a copy without the rows that have at least one missing cell
func DropNA(table *schema.Table) *schema.Table {
	cols := table.ColumnNames()
	return SelectWhere(table, func(r data.Row) bool {
		return !r.HasMissing(cols)
	})
}

// Duplicated marks every row whose values over the subset columns already appeared in an earlier row
// With no subset every column is compared.
func Duplicated(table *schema.Table, subset ...string) (data.Mask, error) {
	table.RLock()
	defer table.RUnlock()

	cols, err := subsetColumns(table, subset)
	if err != nil {
		return data.Mask{}, err
	}

	mask := data.NewMask(strings.Join(cols, ","), len(table.Rows))
	seen := make(map[string]struct{})
	for _, row := range table.Rows {
		key := rowKey(row, cols)
		_, dup := seen[key]
		if !dup {
			seen[key] = struct{}{}
		}
		mask.Append(row.Index, dup)
	}
	return mask, nil
}

// DropDuplicates keeps the first row for each distinct combination of subset values
func DropDuplicates(table *schema.Table, subset ...string) (*schema.Table, error) {
	mask, err := Duplicated(table, subset...)
	if err != nil {
		return nil, err
	}
	dups := mask.ByLabel()
	return SelectWhere(table, func(r data.Row) bool {
		return !dups[r.Index]
	}), nil
}

// Interpolate returns a copy where missing cells of FLOAT columns are filled linearly by row position
// Leading missing cells stay missing, trailing ones take the last present value.
func Interpolate(table *schema.Table) (*schema.Table, error) {
	out := table.Copy()
	for _, col := range out.Schema.Columns {
		if col.Type != schema.ColumnTypeFloat {
			continue
		}
		interpolateColumn(out, col.Name)
	}
	return out, nil
}

func interpolateColumn(t *schema.Table, column string) {
	prev := -1
	for i := range t.Rows {
		if t.Rows[i].IsMissing(column) {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			lo, _ := schema.ToFloat(t.Rows[prev].Data[column])
			hi, _ := schema.ToFloat(t.Rows[i].Data[column])
			span := float64(i - prev)
			for j := prev + 1; j < i; j++ {
				t.Rows[j].Data[column] = lo + (hi-lo)*float64(j-prev)/span
			}
		}
		prev = i
	}

	if prev < 0 {
		return
	}
	last := t.Rows[prev].Data[column]
	for j := prev + 1; j < len(t.Rows); j++ {
		t.Rows[j].Data[column] = last
	}
}

// IsNA returns a BOOL table that is true wherever the corresponding cell is missing
func IsNA(table *schema.Table) *schema.Table {
	table.RLock()
	defer table.RUnlock()

	cols := make([]schema.Column, len(table.Schema.Columns))
	for i, col := range table.Schema.Columns {
		cols[i] = schema.Column{Name: col.Name, Type: schema.ColumnTypeBool}
	}

	rows := make([]data.Row, len(table.Rows))
	for i, row := range table.Rows {
		cells := make(map[string]interface{}, len(cols))
		for _, col := range cols {
			cells[col.Name] = row.IsMissing(col.Name)
		}
		rows[i] = data.NewRow(row.Index, cells)
	}

	return &schema.Table{
		Name:   table.Name,
		Schema: &schema.TableSchema{TableName: table.Schema.TableName, Columns: cols},
		Rows:   rows,
	}
}

// fillColumnUnsafe sets every missing cell of one column
// Must be called on a table no one else sees, or while holding its lock
func fillColumnUnsafe(t *schema.Table, column string, value interface{}) error {
	_, err := fillMissing(t, column, value)
	return err
}

func fillMissing(t *schema.Table, column string, value interface{}) (int, error) {
	if _, err := t.Column(column); err != nil {
		return 0, err
	}
	changed := 0
	for i := range t.Rows {
		if !t.Rows[i].IsMissing(column) {
			continue
		}
		if err := t.SetCell(i, column, value); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}

func subsetColumns(t *schema.Table, subset []string) ([]string, error) {
	if len(subset) == 0 {
		return t.ColumnNames(), nil
	}
	for _, name := range subset {
		if _, err := t.Column(name); err != nil {
			return nil, err
		}
	}
	return subset, nil
}

// rowKey builds a comparable key from the subset cells; missing cells compare equal
func rowKey(row data.Row, cols []string) string {
	var sb strings.Builder
	for _, col := range cols {
		val, ok := row.Get(col)
		if !ok {
			sb.WriteString("<missing>")
		} else if f, isNum := schema.ToFloat(val); isNum {
			if f == 0 {
				f = 0 // -0 and 0 are equal
			}
			fmt.Fprintf(&sb, "num:%v", f)
		} else {
			fmt.Fprintf(&sb, "%T:%v", val, val)
		}
		sb.WriteByte(0)
	}
	return sb.String()
}
