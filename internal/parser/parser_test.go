package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/tableclean/internal/parser/ast"
)

func TestParseQuery_Comparison(t *testing.T) {
	expr, err := ParseQuery("A > 2")
	require.NoError(t, err)

	cmp, ok := expr.(*ast.Comparison)
	require.True(t, ok, "expected *ast.Comparison, got %T", expr)
	assert.Equal(t, "A", cmp.Column)
	assert.Equal(t, ">", cmp.Operator)
	assert.Equal(t, 2.0, cmp.Value)
}

func TestParseQuery_Literals(t *testing.T) {
	tests := []struct {
		input string
		value interface{}
	}{
		{"B >= -1.5", -1.5},
		{"C == 'x'", "x"},
		{`C != ""`, ""},
		{"D == True", true},
		{"D == false", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := ParseQuery(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.value, expr.(*ast.Comparison).Value)
		})
	}
}

func TestParseQuery_Precedence(t *testing.T) {
	expr, err := ParseQuery("A > 1 or B < 2 and not C == 'x'")
	require.NoError(t, err)

	assert.Equal(t, "(A > 1 or (B < 2 and not C == 'x'))", expr.String())
}

func TestParseQuery_Parentheses(t *testing.T) {
	expr, err := ParseQuery("(A > 1 or B < 2) and D == True")
	require.NoError(t, err)

	assert.Equal(t, "((A > 1 or B < 2) and D == true)", expr.String())
}

func TestParseQuery_Errors(t *testing.T) {
	for _, input := range []string{
		"",
		"A >",
		"> 2",
		"A 2",
		"A > B",
		"(A > 2",
		"A > 2 B",
		"A > - 'x'",
		"A = 2",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseQuery(input)
			assert.Error(t, err)
		})
	}
}
