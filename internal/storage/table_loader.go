package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"

	"github.com/leengari/tableclean/internal/domain/data"
	"github.com/leengari/tableclean/internal/domain/schema"
)

// LoadTable reads dir/meta.json and dir/data.json from fsys and builds a validated table
// data.json is an array of objects; null marks a missing cell. A missing data.json yields an empty table.
func LoadTable(fsys fs.FS, dir string) (*schema.Table, error) {
	metaPath := path.Join(dir, "meta.json")
	dataPath := path.Join(dir, "data.json")

	metaBytes, err := fs.ReadFile(fsys, metaPath)
	if err != nil {
		return nil, err
	}

	var meta TableMeta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, fmt.Errorf("parse %s: %w", metaPath, err)
	}

	columns := make([]schema.Column, 0, len(meta.Columns))
	for _, c := range meta.Columns {
		typ := schema.ColumnType(c.Type)
		switch typ {
		case schema.ColumnTypeInt, schema.ColumnTypeFloat, schema.ColumnTypeText, schema.ColumnTypeBool, schema.ColumnTypeAny:
		default:
			return nil, fmt.Errorf("%s: column %s has unknown type %q", metaPath, c.Name, c.Type)
		}
		columns = append(columns, schema.Column{Name: c.Name, Type: typ})
	}

	var rows []data.Row
	dataBytes, err := fs.ReadFile(fsys, dataPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(dataBytes, &rows); err != nil {
			return nil, fmt.Errorf("parse %s: %w", dataPath, err)
		}
	}

	// labels follow file order
	for i := range rows {
		rows[i].Index = i
	}

	table, err := schema.NewTable(meta.Name, columns, rows)
	if err != nil {
		return nil, err
	}

	slog.Debug("table loaded",
		slog.String("table", table.Name),
		slog.Int("rows", len(rows)),
	)
	return table, nil
}
