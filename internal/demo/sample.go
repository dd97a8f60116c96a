package demo

import (
	"embed"

	"github.com/leengari/tableclean/internal/domain/schema"
	"github.com/leengari/tableclean/internal/storage"
)

//go:embed sample/*.json
var sampleFS embed.FS

// SampleTable builds the fixed 5x4 table every step starts from
//
//	A: 1, 2, NaN, 4, 5
//	B: 10, -5, 10, NaN, 20
//	C: "x", "y", "x", "z", " "
//	D: True, False, True, True, False
func SampleTable() (*schema.Table, error) {
	return storage.LoadTable(sampleFS, "sample")
}
