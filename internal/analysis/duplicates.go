package analysis

import (
	"strings"

	"github.com/KaramelBytes/eda-cli/internal/dataset"
)

// DuplicateRows returns the indexes of rows equal, in every column, to an
// earlier row. The first occurrence is not included. Missing cells compare equal.
func DuplicateRows(ds *dataset.Dataset) []int {
	seen := make(map[string]struct{}, ds.Rows())
	var dups []int
	for r := 0; r < ds.Rows(); r++ {
		key := rowKey(ds, r)
		if _, ok := seen[key]; ok {
			dups = append(dups, r)
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}

func rowKey(ds *dataset.Dataset, r int) string {
	row := ds.Row(r)
	for c := range row {
		if ds.IsNull(r, c) {
			row[c] = "\x00"
		}
	}
	return strings.Join(row, "\x1f")
}
