package storage

// TableMeta is the on-disk description of a table (meta.json)
type TableMeta struct {
	Name    string       `json:"name"`
	Columns []ColumnMeta `json:"columns"`
}

type ColumnMeta struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
