package data

import "fmt"

// Mask is a row-aligned boolean vector
// Index holds the row labels of the rows the mask was computed from
type Mask struct {
	Name   string
	Index  []int
	Values []bool
}

// NewMask creates an empty mask sized for n rows
func NewMask(name string, n int) Mask {
	return Mask{
		Name:   name,
		Index:  make([]int, 0, n),
		Values: make([]bool, 0, n),
	}
}

// Append adds one entry
func (m *Mask) Append(index int, value bool) {
	m.Index = append(m.Index, index)
	m.Values = append(m.Values, value)
}

// Len returns the number of entries
func (m Mask) Len() int {
	return len(m.Values)
}

// Count returns the number of true entries
func (m Mask) Count() int {
	n := 0
	for _, v := range m.Values {
		if v {
			n++
		}
	}
	return n
}

// At returns the mask value for a row label
// Use ByLabel when looking up many rows.
func (m Mask) At(index int) (bool, bool) {
	for i, idx := range m.Index {
		if idx == index {
			return m.Values[i], true
		}
	}
	return false, false
}

// ByLabel maps each row label to its mask value; absent labels read as false
func (m Mask) ByLabel() map[int]bool {
	out := make(map[int]bool, len(m.Index))
	for i, idx := range m.Index {
		out[idx] = m.Values[i]
	}
	return out
}

// String returns a string representation for debugging
func (m Mask) String() string {
	return fmt.Sprintf("Mask(%s)%v", m.Name, m.Values)
}
