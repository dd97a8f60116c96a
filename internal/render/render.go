package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/leengari/tableclean/internal/domain/data"
	"github.com/leengari/tableclean/internal/domain/schema"
)

// DefaultMaxDecimals caps the decimals printed for a float column
const DefaultMaxDecimals = 6

// Options controls table rendering
type Options struct {
	MaxDecimals int      // upper bound on float decimals, DefaultMaxDecimals if zero
	Labels      []string // replaces the numeric row labels when it has one entry per row
}

// Table writes a right-aligned textual rendering of t to w
func Table(w io.Writer, t *schema.Table, opts Options) error {
	t.RLock()
	defer t.RUnlock()

	maxDecimals := opts.MaxDecimals
	if maxDecimals <= 0 {
		maxDecimals = DefaultMaxDecimals
	}

	cols := t.Schema.Columns
	decimals := make([]int, len(cols))
	for i, col := range cols {
		decimals[i] = columnDecimals(t, col, maxDecimals)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	// Header
	fmt.Fprint(tw, "\t")
	for _, col := range cols {
		fmt.Fprintf(tw, "%s\t", col.Name)
	}
	fmt.Fprintln(tw)

	// Rows
	useLabels := len(opts.Labels) == len(t.Rows)
	for r, row := range t.Rows {
		if useLabels {
			fmt.Fprintf(tw, "%s\t", opts.Labels[r])
		} else {
			fmt.Fprintf(tw, "%d\t", row.Index)
		}
		for i, col := range cols {
			val, _ := row.Get(col.Name)
			d := decimals[i]
			if col.Type == schema.ColumnTypeAny {
				d = valueDecimals(val, maxDecimals)
			}
			fmt.Fprintf(tw, "%s\t", FormatValue(val, d))
		}
		fmt.Fprintln(tw)
	}

	if len(t.Rows) == 0 {
		fmt.Fprintf(tw, "Empty table\t\n")
	}
	return tw.Flush()
}

// Mask writes one line per mask entry followed by a footer naming the mask
func Mask(w io.Writer, m data.Mask) error {
	tw := tabwriter.NewWriter(w, 0, 0, 4, ' ', 0)
	for i, idx := range m.Index {
		fmt.Fprintf(tw, "%d\t%s\n", idx, FormatValue(m.Values[i], 0))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Name: %s, dtype: bool\n", m.Name)
	return err
}

// String renders t into a string
func String(t *schema.Table, opts Options) string {
	var sb strings.Builder
	_ = Table(&sb, t, opts)
	return sb.String()
}

// FormatValue renders a single cell; floats use the given number of decimals
func FormatValue(val interface{}, decimals int) string {
	switch v := val.(type) {
	case nil:
		return "NaN"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(v, 'f', decimals, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// columnDecimals finds the smallest decimal count that shows every float in the column
func columnDecimals(t *schema.Table, col schema.Column, maxDecimals int) int {
	if col.Type != schema.ColumnTypeFloat {
		return 0
	}
	d := 1
	for _, row := range t.Rows {
		val, ok := row.Get(col.Name)
		if !ok {
			continue
		}
		if n := valueDecimals(val, maxDecimals); n > d {
			d = n
		}
	}
	return d
}

func valueDecimals(val interface{}, maxDecimals int) int {
	f, ok := val.(float64)
	if !ok {
		return 0
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 1
	}
	n := len(s) - dot - 1
	if n > maxDecimals {
		n = maxDecimals
	}
	return n
}
