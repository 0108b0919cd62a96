package truncate

import "strings"

// Count returns the length of s in UTF-16 code units. Code points above
// the Basic Multilingual Plane count as two units (a surrogate pair).
func Count(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// Cut returns the longest prefix of s that fits in max UTF-16 code
// units. The cut lands on a rune boundary, so a surrogate pair is never
// split.
func Cut(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for i, r := range s {
		w := 1
		if r > 0xFFFF {
			w = 2
		}
		if n+w > max {
			return s[:i]
		}
		n += w
	}
	return s
}

// wordCut returns the longest prefix of s within max units that ends at
// a word boundary, with trailing separator characters trimmed. It
// returns "" when no word boundary falls inside the limit.
func wordCut(s string, max int) string {
	if Count(s) <= max {
		return s
	}
	cut := Cut(s, max)
	if len(cut) < len(s) && s[len(cut)] == ' ' {
		// The limit happens to land exactly on a word boundary.
		return strings.TrimRight(cut, " .,;:!?&/+-")
	}
	i := strings.LastIndexByte(cut, ' ')
	if i <= 0 {
		return ""
	}
	return strings.TrimRight(cut[:i], " .,;:!?&/+-")
}
