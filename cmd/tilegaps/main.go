// Command tilegaps fills numbering gaps in a folder of tile images by
// writing a transparent 128x256 placeholder file (at 96 DPI) for every
// missing index, named with the folder's inferred prefix and extension.
// Files are written into the chosen folder in place; no prompt gates the
// generation. Running it twice is a no-op, since the second run finds a
// contiguous sequence.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/vorshim/tilesheet/internal/chooser"
	"github.com/vorshim/tilesheet/internal/config"
	"github.com/vorshim/tilesheet/internal/gaps"
	"github.com/vorshim/tilesheet/internal/logging"
	"github.com/vorshim/tilesheet/internal/pipeline"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "tilegaps: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilegaps: %v\n", err)
		return 1
	}
	defer log.Close()

	// Positional arg substitutes for the dialog: tilegaps [folder].
	folder := chooser.Chooser(chooser.Native{})
	if len(os.Args) > 1 {
		folder = chooser.Fixed(config.NormalizeDirArg(os.Args[1]))
	}

	dir, err := folder.Choose("Select the folder with the input images")
	if errors.Is(err, chooser.ErrCancelled) {
		log.Info("No folder selected. Exiting.")
		return 0
	}
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	cfg.InputDir = dir

	_, err = pipeline.Fill(&cfg, log)
	switch {
	case errors.Is(err, pipeline.ErrNoImages):
		log.Error("No images found in the selected folder!")
		return 1
	case errors.Is(err, gaps.ErrNoIndexedFiles):
		log.Error("None of the images contain a number in the name. Exiting.")
		return 1
	case err != nil:
		log.Error("%v", err)
		return 1
	}
	return 0
}
