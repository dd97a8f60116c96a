package demo

import (
	"github.com/leengari/tableclean/internal/domain/data"
	"github.com/leengari/tableclean/internal/domain/run"
	"github.com/leengari/tableclean/internal/domain/schema"
	"github.com/leengari/tableclean/internal/query/operations"
	"github.com/leengari/tableclean/internal/stats"
)

// Output is what a step prints: a table, or a mask when Mask is set
type Output struct {
	Table  *schema.Table
	Mask   *data.Mask
	Labels []string // row labels overriding the numeric index
}

// Step is one labelled transformation of the live table
type Step struct {
	Number int
	Label  string
	Apply  func(t *schema.Table, r *run.Run) (Output, error)
}

func tableOut(t *schema.Table, err error) (Output, error) {
	if err != nil {
		return Output{}, err
	}
	return Output{Table: t}, nil
}

func maskOut(m data.Mask, err error) (Output, error) {
	if err != nil {
		return Output{}, err
	}
	return Output{Mask: &m}, nil
}

// Steps returns the ordered transformations
// Steps 6 to 9 modify the live table; every later step sees those changes.
func Steps() []Step {
	return []Step{
		{0, "Original table", func(t *schema.Table, _ *run.Run) (Output, error) {
			return Output{Table: t}, nil
		}},

		// Cleaning
		{1, "Filled missing with 0", func(t *schema.Table, _ *run.Run) (Output, error) {
			return tableOut(operations.FillNA(t, 0.0))
		}},
		{2, "Filled missing with column mean", func(t *schema.Table, _ *run.Run) (Output, error) {
			return tableOut(operations.FillNAMean(t))
		}},
		{3, "Dropped rows with missing values", func(t *schema.Table, _ *run.Run) (Output, error) {
			return Output{Table: operations.DropNA(t)}, nil
		}},
		{4, "Duplicates in 'C'", func(t *schema.Table, _ *run.Run) (Output, error) {
			return maskOut(operations.Duplicated(t, "C"))
		}},
		{5, "Dropped duplicates in 'C'", func(t *schema.Table, _ *run.Run) (Output, error) {
			return tableOut(operations.DropDuplicates(t, "C"))
		}},
		{6, "Whitespace stripped from 'C'", func(t *schema.Table, r *run.Run) (Output, error) {
			return Output{Table: t}, operations.StripColumn(t, "C", r)
		}},
		{7, "Replaced 'x' with 'X' in 'C'", func(t *schema.Table, r *run.Run) (Output, error) {
			return Output{Table: t}, operations.ReplaceInColumn(t, "C", "x", "X", r)
		}},
		{8, "Converted 'A' to int", func(t *schema.Table, r *run.Run) (Output, error) {
			if err := operations.FillColumn(t, "A", int64(0), r); err != nil {
				return Output{}, err
			}
			return Output{Table: t}, operations.CastColumnInt(t, "A", r)
		}},
		{9, "Clipped 'B' between 0 and 15", func(t *schema.Table, r *run.Run) (Output, error) {
			return Output{Table: t}, operations.ClipColumn(t, "B", 0, 15, r)
		}},
		{10, "Replaced missing with -1", func(t *schema.Table, _ *run.Run) (Output, error) {
			return tableOut(operations.ReplaceMissing(t, int64(-1)))
		}},
		{11, "Interpolated missing values", func(t *schema.Table, _ *run.Run) (Output, error) {
			return tableOut(operations.Interpolate(t))
		}},

		// Filtering
		{12, "Rows where A > 2", func(t *schema.Table, _ *run.Run) (Output, error) {
			return tableOut(operations.QueryExpr(t, "A > 2"))
		}},
		{13, "Rows where B > 5", func(t *schema.Table, _ *run.Run) (Output, error) {
			mask, err := operations.Compare(t, "B", operations.OpGt, 5)
			if err != nil {
				return Output{}, err
			}
			hits := mask.ByLabel()
			return Output{Table: operations.SelectWhere(t, func(row data.Row) bool {
				return hits[row.Index]
			})}, nil
		}},
		{14, "First 3 rows", func(t *schema.Table, _ *run.Run) (Output, error) {
			return Output{Table: operations.Head(t, 3)}, nil
		}},
		{15, "Values where B > 0", func(t *schema.Table, _ *run.Run) (Output, error) {
			mask, err := operations.Compare(t, "B", operations.OpGt, 0)
			if err != nil {
				return Output{}, err
			}
			return tableOut(operations.Where(t, mask))
		}},
		{16, "Values where B > 10 masked with -1", func(t *schema.Table, _ *run.Run) (Output, error) {
			mask, err := operations.Compare(t, "B", operations.OpGt, 10)
			if err != nil {
				return Output{}, err
			}
			return tableOut(operations.MaskWith(t, mask, int64(-1)))
		}},
		{17, "Missing value mask", func(t *schema.Table, _ *run.Run) (Output, error) {
			return Output{Table: operations.IsNA(t)}, nil
		}},
	}
}

// DescribeStep summarizes the numeric columns of the live table
func DescribeStep() Step {
	return Step{18, "Summary statistics", func(t *schema.Table, _ *run.Run) (Output, error) {
		summary, err := stats.Describe(t)
		if err != nil {
			return Output{}, err
		}
		return Output{Table: summary, Labels: stats.DescribeLabels}, nil
	}}
}
