package operations

import (
	"github.com/leengari/tableclean/internal/domain/data"
	"github.com/leengari/tableclean/internal/domain/schema"
)

// Where returns a copy keeping rows where the mask is true and blanking every cell of the others
// Rows absent from the mask are blanked too.
func Where(table *schema.Table, mask data.Mask) (*schema.Table, error) {
	return replaceRows(table, mask, false, nil)
}

// MaskWith returns a copy with every cell of the rows where the mask is true set to value
func MaskWith(table *schema.Table, mask data.Mask, value interface{}) (*schema.Table, error) {
	return replaceRows(table, mask, true, value)
}

func replaceRows(table *schema.Table, mask data.Mask, when bool, value interface{}) (*schema.Table, error) {
	out := table.Copy()
	cols := out.ColumnNames()

	hits := mask.ByLabel()
	for i, row := range out.Rows {
		if hits[row.Index] != when {
			continue
		}
		for _, col := range cols {
			if err := out.SetCell(i, col, value); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
