package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/tableclean/internal/domain/data"
	domainerrors "github.com/leengari/tableclean/internal/domain/errors"
	"github.com/leengari/tableclean/internal/domain/schema"
)

func newTable(t *testing.T, typ schema.ColumnType, values ...interface{}) *schema.Table {
	t.Helper()
	rows := make([]data.Row, len(values))
	for i, v := range values {
		rows[i] = data.NewRow(i, map[string]interface{}{"v": v})
	}
	table, err := schema.NewTable("t", []schema.Column{{Name: "v", Type: typ}}, rows)
	require.NoError(t, err)
	return table
}

func TestNewTable_NormalizesValues(t *testing.T) {
	table := newTable(t, schema.ColumnTypeInt, 1, int64(2), 3.0)

	values, err := table.Values("v")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, values)
}

func TestNewTable_TypeMismatch(t *testing.T) {
	_, err := schema.NewTable("t",
		[]schema.Column{{Name: "v", Type: schema.ColumnTypeBool}},
		[]data.Row{data.NewRow(7, map[string]interface{}{"v": "yes"})},
	)

	var ce *domainerrors.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "type_mismatch", ce.Constraint)
	assert.Equal(t, 7, ce.RowIndex)
}

func TestNewTable_IntOutOfRange(t *testing.T) {
	_, err := schema.NewTable("t",
		[]schema.Column{{Name: "v", Type: schema.ColumnTypeInt}},
		[]data.Row{data.NewRow(0, map[string]interface{}{"v": 1e19})},
	)

	var ce *domainerrors.ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "type_mismatch", ce.Constraint)

	assert.True(t, schema.FitsInt64(-9.2e18))
	assert.False(t, schema.FitsInt64(9.3e18))
}

func TestNewTable_MissingIntPromotesToFloat(t *testing.T) {
	table := newTable(t, schema.ColumnTypeInt, 1, nil, 3)

	col, err := table.Column("v")
	require.NoError(t, err)
	assert.Equal(t, schema.ColumnTypeFloat, col.Type)

	values, _ := table.Values("v")
	assert.Equal(t, []interface{}{1.0, nil, 3.0}, values)
}

func TestNewTable_AbsentKeyIsMissing(t *testing.T) {
	table, err := schema.NewTable("t",
		[]schema.Column{{Name: "a", Type: schema.ColumnTypeText}, {Name: "b", Type: schema.ColumnTypeText}},
		[]data.Row{data.NewRow(0, map[string]interface{}{"a": "only"})},
	)
	require.NoError(t, err)
	assert.True(t, table.Rows[0].IsMissing("b"))
}

func TestNewTable_UnknownKeyRejected(t *testing.T) {
	_, err := schema.NewTable("t",
		[]schema.Column{{Name: "a", Type: schema.ColumnTypeText}},
		[]data.Row{data.NewRow(0, map[string]interface{}{"a": "x", "extra": 1})},
	)

	var nf *domainerrors.ColumnNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "extra", nf.ColumnName)
}

func TestCopy_IsIndependent(t *testing.T) {
	table := newTable(t, schema.ColumnTypeText, "a", "b")

	cp := table.Copy()
	cp.Rows[0].Data["v"] = "changed"
	cp.Schema.Columns[0].Type = schema.ColumnTypeAny

	assert.Equal(t, "a", table.Rows[0].Data["v"])
	assert.Equal(t, schema.ColumnTypeText, table.Schema.Columns[0].Type)
}

func TestSetCell_Promotion(t *testing.T) {
	tests := []struct {
		name     string
		typ      schema.ColumnType
		initial  interface{}
		value    interface{}
		wantType schema.ColumnType
		want     []interface{}
	}{
		{"int keeps int", schema.ColumnTypeInt, 1, int64(-1), schema.ColumnTypeInt, []interface{}{int64(1), int64(-1)}},
		{"int takes missing", schema.ColumnTypeInt, 1, nil, schema.ColumnTypeFloat, []interface{}{1.0, nil}},
		{"int takes fraction", schema.ColumnTypeInt, 1, 0.5, schema.ColumnTypeFloat, []interface{}{1.0, 0.5}},
		{"float takes int", schema.ColumnTypeFloat, 1.5, int64(-1), schema.ColumnTypeFloat, []interface{}{1.5, -1.0}},
		{"text takes number", schema.ColumnTypeText, "a", int64(-1), schema.ColumnTypeAny, []interface{}{"a", int64(-1)}},
		{"bool takes missing", schema.ColumnTypeBool, true, nil, schema.ColumnTypeBool, []interface{}{true, nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := newTable(t, tt.typ, tt.initial, tt.initial)

			require.NoError(t, table.SetCell(1, "v", tt.value))

			col, _ := table.Column("v")
			assert.Equal(t, tt.wantType, col.Type)
			values, _ := table.Values("v")
			assert.Equal(t, tt.want, values)
		})
	}
}

func TestSetColumnType(t *testing.T) {
	table := newTable(t, schema.ColumnTypeFloat, 1.0, nil, 2.0)
	require.NoError(t, table.SetColumnType("v", schema.ColumnTypeAny))

	table = newTable(t, schema.ColumnTypeFloat, 1.5)
	assert.Error(t, table.SetColumnType("v", schema.ColumnTypeInt), "fraction into INT")
}

func TestColumn_NotFound(t *testing.T) {
	table := newTable(t, schema.ColumnTypeText, "a")

	_, err := table.Column("nope")
	var nf *domainerrors.ColumnNotFoundError
	assert.True(t, errors.As(err, &nf))
}
