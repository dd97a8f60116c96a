package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/tableclean/internal/domain/data"
	"github.com/leengari/tableclean/internal/domain/schema"
)

// fields splits rendered output into whitespace-separated tokens per line
func fields(s string) [][]string {
	var out [][]string
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		out = append(out, strings.Fields(line))
	}
	return out
}

func TestTable(t *testing.T) {
	table, err := schema.NewTable("t",
		[]schema.Column{
			{Name: "A", Type: schema.ColumnTypeFloat},
			{Name: "B", Type: schema.ColumnTypeFloat},
			{Name: "C", Type: schema.ColumnTypeText},
			{Name: "D", Type: schema.ColumnTypeBool},
		},
		[]data.Row{
			data.NewRow(0, map[string]interface{}{"A": 1.0, "B": 10.0, "C": "x", "D": true}),
			data.NewRow(3, map[string]interface{}{"A": nil, "B": 8.75, "C": "z", "D": false}),
		},
	)
	require.NoError(t, err)

	got := fields(String(table, Options{}))

	assert.Equal(t, [][]string{
		{"A", "B", "C", "D"},
		{"0", "1.0", "10.00", "x", "True"},
		{"3", "NaN", "8.75", "z", "False"},
	}, got)
}

func TestTable_RightAligned(t *testing.T) {
	table, err := schema.NewTable("t",
		[]schema.Column{{Name: "value", Type: schema.ColumnTypeInt}},
		[]data.Row{
			data.NewRow(0, map[string]interface{}{"value": 1}),
			data.NewRow(1, map[string]interface{}{"value": 100}),
		},
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(String(table, Options{}), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "value"))
	assert.True(t, strings.HasSuffix(lines[1], "    1"))
	assert.True(t, strings.HasSuffix(lines[2], "  100"))
}

func TestTable_Labels(t *testing.T) {
	table, err := schema.NewTable("t",
		[]schema.Column{{Name: "v", Type: schema.ColumnTypeFloat}},
		[]data.Row{
			data.NewRow(0, map[string]interface{}{"v": 4.0}),
			data.NewRow(1, map[string]interface{}{"v": 0.125}),
		},
	)
	require.NoError(t, err)

	got := fields(String(table, Options{Labels: []string{"count", "mean"}}))
	assert.Equal(t, []string{"count", "4.000"}, got[1])
	assert.Equal(t, []string{"mean", "0.125"}, got[2])
}

func TestTable_MaxDecimals(t *testing.T) {
	table, err := schema.NewTable("t",
		[]schema.Column{{Name: "v", Type: schema.ColumnTypeFloat}},
		[]data.Row{data.NewRow(0, map[string]interface{}{"v": 1.0 / 3.0})},
	)
	require.NoError(t, err)

	got := fields(String(table, Options{MaxDecimals: 3}))
	assert.Equal(t, []string{"0", "0.333"}, got[1])
}

func TestTable_AnyColumnFormatsPerCell(t *testing.T) {
	table, err := schema.NewTable("t",
		[]schema.Column{{Name: "C", Type: schema.ColumnTypeAny}},
		[]data.Row{
			data.NewRow(0, map[string]interface{}{"C": "X"}),
			data.NewRow(1, map[string]interface{}{"C": int64(-1)}),
			data.NewRow(2, map[string]interface{}{"C": 2.5}),
		},
	)
	require.NoError(t, err)

	got := fields(String(table, Options{}))
	assert.Equal(t, []string{"0", "X"}, got[1])
	assert.Equal(t, []string{"1", "-1"}, got[2])
	assert.Equal(t, []string{"2", "2.5"}, got[3])
}

func TestMask(t *testing.T) {
	m := data.NewMask("C", 3)
	m.Append(0, false)
	m.Append(1, false)
	m.Append(2, true)

	var sb strings.Builder
	require.NoError(t, Mask(&sb, m))

	assert.Equal(t, [][]string{
		{"0", "False"},
		{"1", "False"},
		{"2", "True"},
		{"Name:", "C,", "dtype:", "bool"},
	}, fields(sb.String()))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "NaN", FormatValue(nil, 1))
	assert.Equal(t, "True", FormatValue(true, 1))
	assert.Equal(t, "-1", FormatValue(int64(-1), 1))
	assert.Equal(t, "12.50", FormatValue(12.5, 2))
	assert.Equal(t, "", FormatValue("", 1))
}
