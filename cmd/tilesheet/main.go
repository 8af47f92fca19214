// Command tilesheet assembles a sprite-sheet grid from a folder of
// numbered tile images. The operator picks an input and an output folder
// (native dialogs, or positional arguments for headless use), confirms
// whether numbering gaps should become transparent placeholder cells, and
// gets a single composite written as tilesheet.png.
//
// There are no flags: tile size (128x256), column count (8) and DPI (96)
// are compiled in. The folder is assumed to hold one naming family with a
// shared prefix; mixed families give undefined results.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/vorshim/tilesheet/internal/chooser"
	"github.com/vorshim/tilesheet/internal/config"
	"github.com/vorshim/tilesheet/internal/display"
	"github.com/vorshim/tilesheet/internal/gaps"
	"github.com/vorshim/tilesheet/internal/logging"
	"github.com/vorshim/tilesheet/internal/pipeline"
)

// version is injected at build time via -ldflags.
var version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "tilesheet: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilesheet: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()
	log.Info("=== Tilesheet v%s ===", version)

	// Positional args substitute for the dialogs: tilesheet [input [output]].
	args := os.Args[1:]
	input := chooser.Chooser(chooser.Native{})
	output := chooser.Chooser(chooser.Native{})
	if len(args) >= 1 {
		input = chooser.Fixed(config.NormalizeDirArg(args[0]))
	}
	if len(args) >= 2 {
		output = chooser.Fixed(config.NormalizeDirArg(args[1]))
	}

	inputDir, err := input.Choose("Select the input folder")
	if errors.Is(err, chooser.ErrCancelled) {
		log.Info("No input folder selected, exiting.")
		return 0
	}
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	outputDir, err := output.Choose("Select the output folder")
	if errors.Is(err, chooser.ErrCancelled) {
		log.Info("No output folder selected, exiting.")
		return 0
	}
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	cfg.InputDir = inputDir
	cfg.OutputDir = outputDir
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %s", cfg.OutputDir)
		return 1
	}

	gapFill := chooser.Confirm(os.Stdin, os.Stdout,
		"Create placeholders for missing indices? (Y/n): ")

	_, err = pipeline.Compose(&cfg, log, gapFill)
	switch {
	case errors.Is(err, pipeline.ErrNoImages):
		log.Error("No images found in the input folder.")
		return 1
	case errors.Is(err, gaps.ErrNoIndexedFiles):
		log.Error("None of the images contain a number in the name.")
		return 1
	case err != nil:
		log.Error("%v", err)
		return 1
	}
	return 0
}
