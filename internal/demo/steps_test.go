package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/tableclean/internal/domain/run"
	"github.com/leengari/tableclean/internal/domain/schema"
)

// applyThrough runs steps 0..n against a fresh sample table and returns the live table and step n's output
func applyThrough(t *testing.T, n int) (*schema.Table, Output) {
	t.Helper()
	table, err := SampleTable()
	require.NoError(t, err)

	r := run.New()
	var out Output
	for _, s := range Steps()[:n+1] {
		out, err = s.Apply(table, r)
		require.NoError(t, err, "step %d", s.Number)
	}
	return table, out
}

func column(t *testing.T, table *schema.Table, name string) []interface{} {
	t.Helper()
	values, err := table.Values(name)
	require.NoError(t, err)
	return values
}

func indexOf(table *schema.Table) []int {
	out := make([]int, len(table.Rows))
	for i, r := range table.Rows {
		out[i] = r.Index
	}
	return out
}

func TestStep1_FillZero(t *testing.T) {
	_, out := applyThrough(t, 1)

	assert.Equal(t, []interface{}{1.0, 2.0, 0.0, 4.0, 5.0}, column(t, out.Table, "A"))
	assert.Equal(t, []interface{}{10.0, -5.0, 10.0, 0.0, 20.0}, column(t, out.Table, "B"))
	assert.Equal(t, []interface{}{"x", "y", "x", "z", " "}, column(t, out.Table, "C"))
	assert.Equal(t, []interface{}{true, false, true, true, false}, column(t, out.Table, "D"))
}

func TestStep4_DuplicateMask(t *testing.T) {
	_, out := applyThrough(t, 4)

	require.NotNil(t, out.Mask)
	assert.Equal(t, []bool{false, false, true, false, false}, out.Mask.Values)
}

func TestStep5_DropDuplicates(t *testing.T) {
	_, out := applyThrough(t, 5)

	assert.Equal(t, []int{0, 1, 3, 4}, indexOf(out.Table))
}

func TestStep10_ReplaceMissing(t *testing.T) {
	_, out := applyThrough(t, 10)

	assert.Equal(t, []interface{}{10.0, 0.0, 10.0, -1.0, 15.0}, column(t, out.Table, "B"))
}

func TestStep11_Interpolate(t *testing.T) {
	live, out := applyThrough(t, 11)

	assert.Equal(t, []interface{}{10.0, 0.0, 10.0, 12.5, 15.0}, column(t, out.Table, "B"))
	assert.Nil(t, column(t, live, "B")[3], "interpolation works on a copy")
}

func TestSteps12To14_Filters(t *testing.T) {
	_, out := applyThrough(t, 12)
	assert.Equal(t, []int{3, 4}, indexOf(out.Table))

	_, out = applyThrough(t, 13)
	assert.Equal(t, []int{0, 2, 4}, indexOf(out.Table))

	_, out = applyThrough(t, 14)
	assert.Equal(t, []int{0, 1, 2}, indexOf(out.Table))
}

func TestStep15_Where(t *testing.T) {
	_, out := applyThrough(t, 15)

	assert.Equal(t, []interface{}{1.0, nil, 0.0, nil, 5.0}, column(t, out.Table, "A"))
	assert.Equal(t, []interface{}{"X", nil, "X", nil, ""}, column(t, out.Table, "C"))
}

func TestStep16_Mask(t *testing.T) {
	_, out := applyThrough(t, 16)

	assert.Equal(t, []interface{}{"X", "y", "X", "z", int64(-1)}, column(t, out.Table, "C"))
	assert.Equal(t, []interface{}{10.0, 0.0, 10.0, nil, -1.0}, column(t, out.Table, "B"))
}

func TestStep17_IsNA(t *testing.T) {
	_, out := applyThrough(t, 17)

	assert.Equal(t, []interface{}{false, false, false, false, false}, column(t, out.Table, "A"))
	assert.Equal(t, []interface{}{false, false, false, true, false}, column(t, out.Table, "B"))
}

func TestDescribeStep(t *testing.T) {
	table, _ := applyThrough(t, 17)

	out, err := DescribeStep().Apply(table, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, out.Table.ColumnNames())
	assert.Len(t, out.Labels, out.Table.Len())
	assert.Equal(t, 4.0, column(t, out.Table, "B")[0], "B count skips the missing cell")
}
