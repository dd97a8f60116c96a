package schema

import (
	"sync"

	"github.com/leengari/tableclean/internal/domain/data"
	"github.com/leengari/tableclean/internal/domain/errors"
)

// Table represents an in-memory table with its schema and rows
type Table struct {
	mu     sync.RWMutex
	Name   string
	Schema *TableSchema
	Rows   []data.Row
}

// NewTable builds a table and validates every present value against its column type
func NewTable(name string, columns []Column, rows []data.Row) (*Table, error) {
	t := &Table{
		Name: name,
		Schema: &TableSchema{
			TableName: name,
			Columns:   append([]Column(nil), columns...),
		},
		Rows: make([]data.Row, 0, len(rows)),
	}

	for _, row := range rows {
		r := row.Copy()
		if err := t.validateRow(r); err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, r)
	}
	return t, nil
}

// Lock acquires an exclusive lock on the table for in-place operations
func (t *Table) Lock() {
	t.mu.Lock()
}

// Unlock releases the exclusive lock
func (t *Table) Unlock() {
	t.mu.Unlock()
}

// RLock acquires a read lock on the table for read operations
func (t *Table) RLock() {
	t.mu.RLock()
}

// RUnlock releases the read lock
func (t *Table) RUnlock() {
	t.mu.RUnlock()
}

// Copy returns a deep copy of the table with the same name, schema and row labels
func (t *Table) Copy() *Table {
	t.RLock()
	defer t.RUnlock()
	return t.CopyUnsafe()
}

// CopyUnsafe copies without acquiring the lock
// IMPORTANT: Only call this when you already hold the table lock!
func (t *Table) CopyUnsafe() *Table {
	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = row.Copy()
	}
	return &Table{
		Name: t.Name,
		Schema: &TableSchema{
			TableName: t.Schema.TableName,
			Columns:   append([]Column(nil), t.Schema.Columns...),
		},
		Rows: rows,
	}
}

// WithRows returns a table sharing this table's schema shape but holding the given rows
func (t *Table) WithRows(rows []data.Row) *Table {
	return &Table{
		Name: t.Name,
		Schema: &TableSchema{
			TableName: t.Schema.TableName,
			Columns:   append([]Column(nil), t.Schema.Columns...),
		},
		Rows: rows,
	}
}

// Len returns the number of rows
func (t *Table) Len() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.Rows)
}

// ColumnNames returns the column names in schema order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Schema.Columns))
	for i, col := range t.Schema.Columns {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column definition by name
func (t *Table) Column(name string) (*Column, error) {
	for i := range t.Schema.Columns {
		if t.Schema.Columns[i].Name == name {
			return &t.Schema.Columns[i], nil
		}
	}
	return nil, &errors.ColumnNotFoundError{
		TableName:  t.Name,
		ColumnName: name,
	}
}

// Values returns the cells of one column in row order, nil for missing
func (t *Table) Values(name string) ([]interface{}, error) {
	t.RLock()
	defer t.RUnlock()

	if _, err := t.Column(name); err != nil {
		return nil, err
	}
	out := make([]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		out[i], _ = row.Get(name)
	}
	return out, nil
}

// SetCell writes a value into one cell, promoting the column type when needed
// Must be called while holding a lock (or on a table no one else sees)
func (t *Table) SetCell(rowPos int, column string, val interface{}) error {
	col, err := t.Column(column)
	if err != nil {
		return err
	}

	if promoted := PromoteFor(col.Type, val); promoted != col.Type {
		t.convertColumn(col, promoted)
	}

	norm, _ := NormalizeValue(val, col.Type)
	t.Rows[rowPos].Data[column] = norm
	return nil
}

// SetColumnType changes the declared column type, converting every present value
// Must be called while holding a lock
func (t *Table) SetColumnType(column string, typ ColumnType) error {
	col, err := t.Column(column)
	if err != nil {
		return err
	}
	for i, row := range t.Rows {
		val, ok := row.Get(column)
		if !ok {
			continue
		}
		if _, ok := NormalizeValue(val, typ); !ok {
			return errors.NewTypeMismatch(t.Name, column, val, string(typ), t.Rows[i].Index)
		}
	}
	t.convertColumn(col, typ)
	return nil
}

// convertColumn rewrites present values into the canonical type of typ
func (t *Table) convertColumn(col *Column, typ ColumnType) {
	col.Type = typ
	for i := range t.Rows {
		val, ok := t.Rows[i].Get(col.Name)
		if !ok {
			continue
		}
		if norm, ok := NormalizeValue(val, typ); ok {
			t.Rows[i].Data[col.Name] = norm
		}
	}
}

// validateRow validates a row against the table schema
// Missing INT cells promote the column to FLOAT instead of failing
func (t *Table) validateRow(row data.Row) error {
	for name := range row.Data {
		if _, err := t.Column(name); err != nil {
			return err
		}
	}

	for i := range t.Schema.Columns {
		col := &t.Schema.Columns[i]
		val, ok := row.Get(col.Name)
		if !ok {
			row.Data[col.Name] = nil
			if col.Type == ColumnTypeInt {
				t.convertColumn(col, ColumnTypeFloat)
			}
			continue
		}

		norm, ok := NormalizeValue(val, col.Type)
		if !ok {
			return errors.NewTypeMismatch(t.Name, col.Name, val, string(col.Type), row.Index)
		}
		row.Data[col.Name] = norm
	}
	return nil
}
