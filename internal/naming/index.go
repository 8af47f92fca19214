package naming

import (
	"path/filepath"
	"strconv"
	"strings"
)

// ParseLastNumber extracts the integer value of the last digit run in
// filename. Multiple digit runs are allowed; only the final run counts:
//
//	"camping_04_12.png" → 12
//	"tenda10.jpg"       → 10
//	"noNumbers.png"     → ok=false
//
// The whole filename including the extension is scanned, matching the
// behavior tile authors rely on for names like "tenda10.jpg". A digit run
// too large for int is ignored and the previous run (if any) wins.
func ParseLastNumber(filename string) (index int, ok bool) {
	i := 0
	for i < len(filename) {
		if !isDigit(filename[i]) {
			i++
			continue
		}
		j := i
		for j < len(filename) && isDigit(filename[j]) {
			j++
		}
		if n, err := strconv.Atoi(filename[i:j]); err == nil {
			index = n
			ok = true
		}
		i = j
	}
	return index, ok
}

// ParsePrefix derives the shared filename prefix by stripping the extension
// and then the decimal representation of index from the end of the base
// name: ParsePrefix("camping_04_12.png", 12) → "camping_04_".
//
// When the base name does not end with that exact numeric string (e.g. the
// last digit run sits mid-name, as in "shot12_final.png"), the full base is
// returned unmodified. This is a documented limitation, not corrected here:
// callers synthesizing names from such a prefix will produce a second naming
// family.
func ParsePrefix(filename string, index int) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	num := strconv.Itoa(index)
	if strings.HasSuffix(base, num) {
		return base[:len(base)-len(num)]
	}
	return base
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
