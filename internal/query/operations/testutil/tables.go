package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leengari/tableclean/internal/domain/data"
	"github.com/leengari/tableclean/internal/domain/schema"
)

// CreateSampleTable builds the mixed-type table with gaps used across operation tests
//
//	A: 1, 2, NaN, 4, 5
//	B: 10, -5, 10, NaN, 20
//	C: "x", "y", "x", "z", " "
//	D: true, false, true, true, false
func CreateSampleTable(t *testing.T) *schema.Table {
	t.Helper()
	table, err := schema.NewTable("sample",
		[]schema.Column{
			{Name: "A", Type: schema.ColumnTypeFloat},
			{Name: "B", Type: schema.ColumnTypeFloat},
			{Name: "C", Type: schema.ColumnTypeText},
			{Name: "D", Type: schema.ColumnTypeBool},
		},
		[]data.Row{
			data.NewRow(0, map[string]interface{}{"A": 1.0, "B": 10.0, "C": "x", "D": true}),
			data.NewRow(1, map[string]interface{}{"A": 2.0, "B": -5.0, "C": "y", "D": false}),
			data.NewRow(2, map[string]interface{}{"A": nil, "B": 10.0, "C": "x", "D": true}),
			data.NewRow(3, map[string]interface{}{"A": 4.0, "B": nil, "C": "z", "D": true}),
			data.NewRow(4, map[string]interface{}{"A": 5.0, "B": 20.0, "C": " ", "D": false}),
		},
	)
	require.NoError(t, err)
	return table
}

// CreateNumericTable builds a single FLOAT column table named "v" from values, nil meaning missing
func CreateNumericTable(t *testing.T, values ...interface{}) *schema.Table {
	t.Helper()
	rows := make([]data.Row, len(values))
	for i, v := range values {
		rows[i] = data.NewRow(i, map[string]interface{}{"v": v})
	}
	table, err := schema.NewTable("numbers", []schema.Column{{Name: "v", Type: schema.ColumnTypeFloat}}, rows)
	require.NoError(t, err)
	return table
}
