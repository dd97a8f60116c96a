package data

import (
	"encoding/json"
)

// Row represents a single table row
// Index is the row label, Data maps column name to cell value
type Row struct {
	Index int
	Data  map[string]interface{}
}

// NewRow creates a new Row with the given label and data
func NewRow(index int, data map[string]interface{}) Row {
	if data == nil {
		data = make(map[string]interface{})
	}
	return Row{
		Index: index,
		Data:  data,
	}
}

// Copy creates a copy of the row so the caller can modify cells freely
func (r Row) Copy() Row {
	copy := make(map[string]interface{}, len(r.Data))
	for k, v := range r.Data {
		copy[k] = v
	}
	return Row{
		Index: r.Index,
		Data:  copy,
	}
}

// Get returns the cell value for a column and whether it is present
func (r Row) Get(column string) (interface{}, bool) {
	val, exists := r.Data[column]
	if !exists || val == nil {
		return nil, false
	}
	return val, true
}

// IsMissing reports whether the named cell holds no value
func (r Row) IsMissing(column string) bool {
	_, ok := r.Get(column)
	return !ok
}

// HasMissing reports whether any of the given columns is missing in this row
func (r Row) HasMissing(columns []string) bool {
	for _, col := range columns {
		if r.IsMissing(col) {
			return true
		}
	}
	return false
}

// UnmarshalJSON decodes a JSON object into the row cells; null means missing
// Index is left untouched, the caller assigns labels.
func (r *Row) UnmarshalJSON(b []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	r.Data = m
	return nil
}
