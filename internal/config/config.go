// Package config holds runtime configuration. Per the operator contract
// there are no flags and no config file: every tunable is a compiled-in
// constant, and a Config only carries the resolved directory paths plus the
// defaults needed by the composer and generator.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Compiled-in tunables. These match the dimensions the target engine's
// asset tooling expects and are deliberately not exposed to the operator.
const (
	TileWidth      = 128
	TileHeight     = 256
	MaxColumns     = 8
	DPI            = 96
	OutputFilename = "tilesheet.png"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds a single run's settings. It is populated by [DefaultConfig]
// and then has its directory fields filled in once the operator has chosen
// folders. All image tunables default to the package constants above.
type Config struct {
	// Paths (resolved via the directory chooser or positional args).
	InputDir  string
	OutputDir string

	// Grid geometry and output metadata.
	TileWidth      int
	TileHeight     int
	MaxColumns     int
	DPI            int
	OutputFilename string

	// Display and logging.
	ColorMode ColorMode
	LogFile   string // Optional log file path.
}

// DefaultConfig returns a Config with every tunable set to its compiled-in
// default. Directory fields are empty until chosen.
func DefaultConfig() Config {
	return Config{
		TileWidth:      TileWidth,
		TileHeight:     TileHeight,
		MaxColumns:     MaxColumns,
		DPI:            DPI,
		OutputFilename: OutputFilename,
		ColorMode:      ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that the geometry and DPI values are positive and that
// the output filename implies a supported encoder format.
func (c *Config) Validate() error {
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return errors.New("tile dimensions must be positive")
	}
	if c.MaxColumns <= 0 {
		return errors.New("max columns must be positive")
	}
	if c.DPI <= 0 {
		return errors.New("dpi must be positive")
	}
	switch strings.ToLower(filepath.Ext(c.OutputFilename)) {
	case ".png", ".jpg", ".jpeg":
		return nil
	default:
		return errors.New("output filename must end in .png, .jpg or .jpeg")
	}
}
