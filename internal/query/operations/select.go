package operations

import (
	"fmt"
	"log/slog"

	"github.com/leengari/tableclean/internal/domain/data"
	"github.com/leengari/tableclean/internal/domain/schema"
)

// PredicateFunc is a function that tests whether a row matches certain criteria
type PredicateFunc func(data.Row) bool

// Op is a comparison operator used by Compare and Query
type Op string

const (
	OpGt  Op = ">"
	OpGte Op = ">="
	OpLt  Op = "<"
	OpLte Op = "<="
	OpEq  Op = "=="
	OpNeq Op = "!="
)

// SelectWhere returns a table holding copies of the rows that match the predicate
// Row labels and order are preserved
func SelectWhere(table *schema.Table, pred PredicateFunc) *schema.Table {
	table.RLock()
	defer table.RUnlock()

	var result []data.Row
	for _, row := range table.Rows {
		if pred(row) {
			result = append(result, row.Copy())
		}
	}
	return table.WithRows(result)
}

// Query keeps the rows whose column satisfies `column op value`
func Query(table *schema.Table, column string, op Op, value interface{}) (*schema.Table, error) {
	mask, err := Compare(table, column, op, value)
	if err != nil {
		return nil, err
	}
	slog.Debug("Query", "table", table.Name, "column", column, "op", op, "matched", mask.Count())

	hits := mask.ByLabel()
	return SelectWhere(table, func(r data.Row) bool {
		return hits[r.Index]
	}), nil
}

// Head returns the first n rows by position
func Head(table *schema.Table, n int) *schema.Table {
	table.RLock()
	defer table.RUnlock()

	if n < 0 {
		n = 0
	}
	if n > len(table.Rows) {
		n = len(table.Rows)
	}
	rows := make([]data.Row, n)
	for i := 0; i < n; i++ {
		rows[i] = table.Rows[i].Copy()
	}
	return table.WithRows(rows)
}

// Compare evaluates `column op value` for every row
// A missing cell never satisfies a comparison.
func Compare(table *schema.Table, column string, op Op, value interface{}) (data.Mask, error) {
	table.RLock()
	defer table.RUnlock()

	if _, err := table.Column(column); err != nil {
		return data.Mask{}, err
	}

	mask := data.NewMask(column, len(table.Rows))
	for _, row := range table.Rows {
		cell, ok := row.Get(column)
		if !ok {
			mask.Append(row.Index, false)
			continue
		}
		res, err := compareValues(cell, op, value)
		if err != nil {
			return data.Mask{}, fmt.Errorf("compare %s.%s at row %d: %w", table.Name, column, row.Index, err)
		}
		mask.Append(row.Index, res)
	}
	return mask, nil
}

func compareValues(a interface{}, op Op, b interface{}) (bool, error) {
	af, aNum := schema.ToFloat(a)
	bf, bNum := schema.ToFloat(b)
	if aNum && bNum {
		switch op {
		case OpGt:
			return af > bf, nil
		case OpGte:
			return af >= bf, nil
		case OpLt:
			return af < bf, nil
		case OpLte:
			return af <= bf, nil
		case OpEq:
			return af == bf, nil
		case OpNeq:
			return af != bf, nil
		}
		return false, fmt.Errorf("unknown operator %q", op)
	}

	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		switch op {
		case OpGt:
			return as > bs, nil
		case OpGte:
			return as >= bs, nil
		case OpLt:
			return as < bs, nil
		case OpLte:
			return as <= bs, nil
		case OpEq:
			return as == bs, nil
		case OpNeq:
			return as != bs, nil
		}
		return false, fmt.Errorf("unknown operator %q", op)
	}

	switch op {
	case OpEq:
		return a == b, nil
	case OpNeq:
		return a != b, nil
	}
	return false, fmt.Errorf("cannot compare %T %s %T", a, op, b)
}
