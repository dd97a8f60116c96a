package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leengari/tableclean/internal/domain/schema"
)

// AssertRowCount checks if the table has the expected number of rows
func AssertRowCount(t *testing.T, table *schema.Table, expected int, context string) {
	t.Helper()
	assert.Equal(t, expected, table.Len(), "%s: row count", context)
}

// AssertIndex checks the row labels of the table, in order
func AssertIndex(t *testing.T, table *schema.Table, expected []int, context string) {
	t.Helper()
	got := make([]int, len(table.Rows))
	for i, row := range table.Rows {
		got[i] = row.Index
	}
	assert.Equal(t, expected, got, "%s: row labels", context)
}

// AssertColumn checks every cell of a column, nil meaning missing
func AssertColumn(t *testing.T, table *schema.Table, column string, expected []interface{}, context string) {
	t.Helper()
	got, err := table.Values(column)
	if !assert.NoError(t, err, "%s: column %s", context, column) {
		return
	}
	assert.Equal(t, expected, got, "%s: column %s", context, column)
}

// AssertColumnType checks the declared type of a column
func AssertColumnType(t *testing.T, table *schema.Table, column string, expected schema.ColumnType, context string) {
	t.Helper()
	col, err := table.Column(column)
	if !assert.NoError(t, err, "%s: column %s", context, column) {
		return
	}
	assert.Equal(t, expected, col.Type, "%s: type of column %s", context, column)
}
