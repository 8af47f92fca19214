// Package gaps detects missing indices in a folder's tile numbering
// sequence. An IndexMap is built by running the filename indexer over every
// candidate file; the range and missing-index queries operate on that map.
package gaps

import (
	"github.com/pkg/errors"

	"github.com/vorshim/tilesheet/internal/naming"
)

// ErrNoIndexedFiles is returned by Range when no filename carried a
// parseable numeric index. This is terminal for index-based processing.
var ErrNoIndexedFiles = errors.New("no filename contains a numeric index")

// IndexMap maps a tile index to the filename that carries it.
type IndexMap map[int]string

// Build runs the filename indexer over names and returns the index map
// plus the names that had no parseable index, in input order. When two
// names share an index the later one wins; the folder is assumed to hold a
// single naming family, so duplicates indicate author error.
func Build(names []string) (IndexMap, []string) {
	m := make(IndexMap, len(names))
	var unparseable []string
	for _, name := range names {
		idx, ok := naming.ParseLastNumber(name)
		if !ok {
			unparseable = append(unparseable, name)
			continue
		}
		m[idx] = name
	}
	return m, unparseable
}

// Range returns the minimum and maximum index present in m.
// Returns ErrNoIndexedFiles when m is empty.
func (m IndexMap) Range() (min, max int, err error) {
	if len(m) == 0 {
		return 0, 0, ErrNoIndexedFiles
	}
	first := true
	for idx := range m {
		if first || idx < min {
			min = idx
		}
		if first || idx > max {
			max = idx
		}
		first = false
	}
	return min, max, nil
}

// Missing returns every integer in [min, max] absent from m, ascending.
func (m IndexMap) Missing(min, max int) []int {
	var missing []int
	for i := min; i <= max; i++ {
		if _, ok := m[i]; !ok {
			missing = append(missing, i)
		}
	}
	return missing
}
