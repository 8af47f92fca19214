package naming

import "strconv"

// NaturalLess reports whether a orders before b when embedded digit runs
// are compared by integer value rather than lexically, so "tile_2.png"
// sorts before "tile_10.png".
//
// Both names are split into alternating text and number segments which are
// compared pairwise. Comparing a text segment against a number segment
// (two incompatible naming schemes in one folder) falls back to a lexical
// comparison of the raw segments, which keeps the order total and
// deterministic even if not meaningful.
func NaturalLess(a, b string) bool {
	sa, sb := splitSegments(a), splitSegments(b)
	for i := 0; i < len(sa) && i < len(sb); i++ {
		x, y := sa[i], sb[i]
		if x == y {
			continue
		}
		nx, errx := strconv.Atoi(x)
		ny, erry := strconv.Atoi(y)
		if errx == nil && erry == nil {
			if nx != ny {
				return nx < ny
			}
			// Same value, different digits ("02" vs "2"): lexical tiebreak.
			return x < y
		}
		return x < y
	}
	return len(sa) < len(sb)
}

// splitSegments cuts s on digit-run boundaries: "tile_10a" →
// ["tile_", "10", "a"]. The concatenation of the segments is always s.
func splitSegments(s string) []string {
	var segs []string
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && isDigit(s[j]) == isDigit(s[i]) {
			j++
		}
		segs = append(segs, s[i:j])
		i = j
	}
	return segs
}
