package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/vorshim/tilesheet/internal/naming"
)

// Supported image file extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Discover lists the eligible image files directly inside dir (no
// recursion, matching the one-folder-one-tileset model) and returns their
// basenames in natural sort order, so "tile_2" precedes "tile_10".
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if imageExtensions[ext] {
			files = append(files, e.Name())
		}
	}
	sort.Slice(files, func(i, j int) bool { return naming.NaturalLess(files[i], files[j]) })
	return files, nil
}
