package display

import (
	"fmt"
	"os"

	"github.com/vorshim/tilesheet/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, "\033[1;95m")
	}
	fmt.Fprint(os.Stdout, ` _____ _ _           _               _
|_   _(_) |___  ___ | |__   ___  ___| |_
  | | | | / _ \/ __|| '_ \ / _ \/ _ \ __|
  | | | | |  __/\__ \| | | |  __/  __/ |_
  |_| |_|_\___||___/ |_| |_|\___|\___|\__|
`)
	if logging.Magenta != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
