package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoValues is returned by statistics over a column with no present values
var ErrNoValues = errors.New("no present values")

// ColumnNotFoundError is returned when an operation names a column the table does not have
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in table %q", e.ColumnName, e.TableName)
}

// ConstraintError represents a value that violates a column's type or nullability
type ConstraintError struct {
	Table      string      // table name
	Column     string      // column name
	Value      interface{} // offending value (may be nil)
	Constraint string      // "type_mismatch", "not_null"
	Reason     string      // human-readable explanation (optional)
	RowIndex   int         // row label where violation occurred (-1 if unknown)
}

func (e *ConstraintError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("constraint violation in %s.%s", e.Table, e.Column))

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.RowIndex))
	}

	return strings.Join(parts, " - ")
}

// NewTypeMismatch reports a value that does not fit the column type
func NewTypeMismatch(table, column string, value interface{}, expectedType string, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Value:      value,
		Constraint: "type_mismatch",
		Reason:     fmt.Sprintf("expected %s, got %T", expectedType, value),
		RowIndex:   rowIndex,
	}
}

// NewNotNullViolation reports a missing value where one is required
func NewNotNullViolation(table, column string, rowIndex int) *ConstraintError {
	return &ConstraintError{
		Table:      table,
		Column:     column,
		Constraint: "not_null",
		Reason:     "missing required value",
		RowIndex:   rowIndex,
	}
}
