package pipeline

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vorshim/tilesheet/internal/config"
	"github.com/vorshim/tilesheet/internal/display"
	"github.com/vorshim/tilesheet/internal/encode"
	"github.com/vorshim/tilesheet/internal/gaps"
	"github.com/vorshim/tilesheet/internal/logging"
	"github.com/vorshim/tilesheet/internal/naming"
	"github.com/vorshim/tilesheet/internal/placeholder"
	"github.com/vorshim/tilesheet/internal/sheet"
)

// ErrNoImages is returned when the chosen folder holds no eligible image
// files at all.
var ErrNoImages = errors.New("no images found in the input folder")

// Compose assembles the tilesheet from cfg.InputDir and writes it to
// cfg.OutputDir under cfg.OutputFilename.
//
// With gapFill the grid spans every index from the lowest to the highest
// found in the folder, leaving transparent cells for missing indices;
// files without a parseable index are excluded with a warning, and
// gaps.ErrNoIndexedFiles is returned when no file carries one. Without
// gapFill the grid simply holds every discovered file in natural sort
// order, numeric suffix or not.
func Compose(cfg *config.Config, log *logging.Logger, gapFill bool) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		return stats, ErrNoImages
	}
	stats.Found = len(files)
	log.Info("Found %d image files in %s", len(files), cfg.InputDir)

	var slots []sheet.Slot
	if gapFill {
		slots, err = gapFillSlots(cfg, log, files, &stats)
		if err != nil {
			return stats, err
		}
	} else {
		for _, name := range files {
			slots = append(slots, sheet.Slot{Path: filepath.Join(cfg.InputDir, name)})
		}
		stats.Placed = len(slots)
	}

	layout := sheet.NewLayout(len(slots), cfg.MaxColumns, cfg.TileWidth, cfg.TileHeight)
	canvas, err := sheet.Compose(slots, layout)
	if err != nil {
		return stats, err
	}

	outputPath := filepath.Join(cfg.OutputDir, cfg.OutputFilename)
	if err := encode.Save(canvas, outputPath, cfg.DPI); err != nil {
		return stats, err
	}
	if fi, err := os.Stat(outputPath); err == nil {
		stats.OutputBytes = fi.Size()
	}

	mode := "natural order"
	if gapFill {
		mode = "gap-fill"
	}
	log.Info("Grid: %d columns x %d rows (%s mode), %d tiles, %d placeholders",
		layout.Columns, layout.Rows, mode, stats.Placed, stats.Placeholders)
	log.Success("Tilesheet saved in: %s (%s, %s, DPI=%d)",
		outputPath,
		display.FormatDimensions(layout.Width(), layout.Height()),
		display.FormatBytes(stats.OutputBytes),
		cfg.DPI)
	return stats, nil
}

// gapFillSlots builds the slot sequence spanning every index between the
// folder's minimum and maximum, placeholders included.
func gapFillSlots(cfg *config.Config, log *logging.Logger, files []string, stats *RunStats) ([]sheet.Slot, error) {
	m, unparseable := gaps.Build(files)
	for _, name := range unparseable {
		log.Warn("No numeric index in %q, excluded from the grid", name)
	}
	stats.Excluded = len(unparseable)

	min, max, err := m.Range()
	if err != nil {
		return nil, err
	}

	slots := make([]sheet.Slot, 0, max-min+1)
	for i := min; i <= max; i++ {
		name, ok := m[i]
		if !ok {
			slots = append(slots, sheet.Slot{Placeholder: true})
			stats.Placeholders++
			continue
		}
		slots = append(slots, sheet.Slot{Path: filepath.Join(cfg.InputDir, name)})
		stats.Placed++
	}
	return slots, nil
}

// Fill writes a transparent placeholder file for every missing index in
// cfg.InputDir, in place, using the prefix and extension inferred from the
// file at the lowest index. Running it again on the same folder is a no-op
// since every previously missing index now has a file.
func Fill(cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		return stats, ErrNoImages
	}
	stats.Found = len(files)

	m, unparseable := gaps.Build(files)
	for _, name := range unparseable {
		log.Warn("No numeric index in %q, skipped", name)
	}
	stats.Excluded = len(unparseable)

	min, max, err := m.Range()
	if err != nil {
		return stats, err
	}

	missing := m.Missing(min, max)
	if len(missing) == 0 {
		log.Info("No gaps in the indices between %d and %d", min, max)
		return stats, nil
	}

	// The whole folder is assumed to share one naming family, so the file
	// at the lowest index is representative for prefix and extension.
	example := m[min]
	prefix := naming.ParsePrefix(example, min)
	ext := strings.ToLower(filepath.Ext(example))

	log.Info("Creating %d missing tiles: %v", len(missing), missing)
	for _, idx := range missing {
		name := prefix + strconv.Itoa(idx) + ext
		path := filepath.Join(cfg.InputDir, name)
		if err := placeholder.WriteFile(path, cfg.TileWidth, cfg.TileHeight, cfg.DPI); err != nil {
			return stats, err
		}
		stats.Created++
		log.Info("Created: %s (%s @ %d DPI)",
			name, display.FormatDimensions(cfg.TileWidth, cfg.TileHeight), cfg.DPI)
	}

	log.Success("Operation completed: %d placeholder tiles written", stats.Created)
	return stats, nil
}
