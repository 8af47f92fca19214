package chooser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes question to w and reads one line from r. Empty input,
// "y" and "yes" (any case) answer yes; anything else answers no. A read
// failure (e.g. closed stdin) also answers yes, keeping the default.
func Confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprint(w, question)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}
