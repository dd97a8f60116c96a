package operations

import (
	"fmt"
	"log/slog"

	"github.com/leengari/tableclean/internal/domain/data"
	"github.com/leengari/tableclean/internal/domain/schema"
	"github.com/leengari/tableclean/internal/parser"
	"github.com/leengari/tableclean/internal/parser/ast"
)

// QueryExpr keeps the rows matching a query expression such as "A > 2 and C == 'X'"
// Comparisons against a missing cell are false.
func QueryExpr(table *schema.Table, query string) (*schema.Table, error) {
	expr, err := parser.ParseQuery(query)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(table, expr); err != nil {
		return nil, err
	}

	var evalErr error
	out := SelectWhere(table, func(r data.Row) bool {
		ok, err := evaluate(expr, r)
		if err != nil && evalErr == nil {
			evalErr = fmt.Errorf("query %q at row %d: %w", query, r.Index, err)
		}
		return ok
	})
	if evalErr != nil {
		return nil, evalErr
	}

	slog.Debug("QueryExpr", "table", table.Name, "query", expr.String(), "matched", len(out.Rows))
	return out, nil
}

func checkColumns(table *schema.Table, expr ast.Expression) error {
	switch e := expr.(type) {
	case *ast.Comparison:
		_, err := table.Column(e.Column)
		return err
	case *ast.LogicalExpression:
		if err := checkColumns(table, e.Left); err != nil {
			return err
		}
		return checkColumns(table, e.Right)
	case *ast.NotExpression:
		return checkColumns(table, e.Operand)
	}
	return fmt.Errorf("unsupported expression %T", expr)
}

func evaluate(expr ast.Expression, row data.Row) (bool, error) {
	switch e := expr.(type) {
	case *ast.Comparison:
		cell, ok := row.Get(e.Column)
		if !ok {
			return false, nil
		}
		return compareValues(cell, Op(e.Operator), e.Value)

	case *ast.LogicalExpression:
		left, err := evaluate(e.Left, row)
		if err != nil {
			return false, err
		}
		if e.Operator == "and" && !left {
			return false, nil
		}
		if e.Operator == "or" && left {
			return true, nil
		}
		return evaluate(e.Right, row)

	case *ast.NotExpression:
		v, err := evaluate(e.Operand, row)
		return !v, err
	}
	return false, fmt.Errorf("unsupported expression %T", expr)
}
