package schema

import "math"

type ColumnType string

const (
	ColumnTypeInt   ColumnType = "INT"
	ColumnTypeFloat ColumnType = "FLOAT"
	ColumnTypeText  ColumnType = "TEXT"
	ColumnTypeBool  ColumnType = "BOOL"
	ColumnTypeAny   ColumnType = "ANY"
)

type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// IsNumeric reports whether the column holds numbers
func (c Column) IsNumeric() bool {
	return c.Type == ColumnTypeInt || c.Type == ColumnTypeFloat
}

// TableSchema represents table metadata
type TableSchema struct {
	TableName string
	Columns   []Column
}

// ToFloat converts a numeric cell value to float64
func ToFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	}
	return 0, false
}

// FitsInt64 reports whether the integral part of f is representable as an int64
func FitsInt64(f float64) bool {
	return f >= -(1<<63) && f < 1<<63
}

// NormalizeValue converts val into the canonical Go type for the column type
// Returns false if the value cannot be stored in that column without promotion
func NormalizeValue(val interface{}, typ ColumnType) (interface{}, bool) {
	if val == nil {
		// INT columns have no missing marker
		return nil, typ != ColumnTypeInt
	}

	switch typ {
	case ColumnTypeInt:
		switch v := val.(type) {
		case int64:
			return v, true
		case int:
			return int64(v), true
		case int32:
			return int64(v), true
		case float64:
			if !math.IsNaN(v) && v == math.Trunc(v) && FitsInt64(v) {
				return int64(v), true
			}
		}
	case ColumnTypeFloat:
		if f, ok := ToFloat(val); ok {
			if math.IsNaN(f) {
				return nil, true
			}
			return f, true
		}
	case ColumnTypeText:
		if s, ok := val.(string); ok {
			return s, true
		}
	case ColumnTypeBool:
		if b, ok := val.(bool); ok {
			return b, true
		}
	case ColumnTypeAny:
		if i, ok := val.(int); ok {
			return int64(i), true
		}
		return val, true
	}
	return nil, false
}

// PromoteFor returns the column type able to hold both the current values and val
func PromoteFor(typ ColumnType, val interface{}) ColumnType {
	if _, ok := NormalizeValue(val, typ); ok {
		return typ
	}
	if typ == ColumnTypeInt {
		if val == nil {
			return ColumnTypeFloat
		}
		if _, ok := ToFloat(val); ok {
			return ColumnTypeFloat
		}
	}
	return ColumnTypeAny
}
