package credits

import (
	"regexp"
	"strings"
)

var (
	// creditSplitRegexp separates a credited-artist list into individual
	// names: commas, ampersands, slashes, semicolons, plus signs, and
	// the words "and", "feat.", "ft.", "featuring", "with".
	creditSplitRegexp = regexp.MustCompile(`(?i)\s*[,&/;+]\s*|\s+(?:and|feat\.?|ft\.?|featuring|with)\s+`)

	// qualifierRegexp drops a trailing "of ..." / "from ..." qualifier
	// from a single name ("Sting of The Police" -> "Sting").
	qualifierRegexp = regexp.MustCompile(`(?i)\s+(?:of|from)\s+.+$`)

	// Trailing featured-guest constructs on a title or artist.
	bracketFeatRegexp = regexp.MustCompile(`(?i)\s*[(\[]\s*(?:feat\.?|ft\.?|featuring|with)\s+([^)\]]+)[)\]]\s*$`)
	bareFeatRegexp    = regexp.MustCompile(`(?i)\s+(?:feat\.?|ft\.?|featuring)\s+(.+)$`)
)

// SplitCredits splits a credited-artist string into individual names,
// dropping blanks.
func SplitCredits(s string) []string {
	parts := creditSplitRegexp.Split(s, -1)
	names := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// FirstCredit returns the first credited name of an artist string, and
// whether more names followed it.
func FirstCredit(s string) (first string, more bool) {
	names := SplitCredits(s)
	if len(names) == 0 {
		return strings.TrimSpace(s), false
	}
	return names[0], len(names) > 1
}

// GuestSet builds the set of name keys credited in an artist string.
// Each name loses a trailing "of ..."/"from ..." qualifier before
// keying.
func GuestSet(artist string) map[string]bool {
	set := make(map[string]bool)
	for _, name := range SplitCredits(artist) {
		name = qualifierRegexp.ReplaceAllString(name, "")
		if key := NameKey(name); key != "" {
			set[key] = true
		}
	}
	return set
}

// FeatTail detects a trailing featured-guest construct: "(feat. X)",
// "feat. X" or "(with X)". It returns the text without the tail and the
// raw guest list.
func FeatTail(s string) (base, guests string, ok bool) {
	if m := bracketFeatRegexp.FindStringSubmatchIndex(s); m != nil {
		return strings.TrimSpace(s[:m[0]]), strings.TrimSpace(s[m[2]:m[3]]), true
	}
	if m := bareFeatRegexp.FindStringSubmatchIndex(s); m != nil {
		return strings.TrimSpace(s[:m[0]]), strings.TrimSpace(s[m[2]:m[3]]), true
	}
	return s, "", false
}

// StripFeat removes a trailing featured-guest construct, if present.
func StripFeat(s string) string {
	base, _, ok := FeatTail(s)
	if !ok || base == "" {
		return s
	}
	return base
}

// CompactFeat rewrites a trailing featured-guest construct to the short
// "& Guest" form: "Song (feat. Jay)" -> "Song & Jay".
func CompactFeat(s string) string {
	base, guests, ok := FeatTail(s)
	if !ok || base == "" || guests == "" {
		return s
	}
	return base + " & " + guests
}

// StripGuestTail removes the featured-guest tail of title only when
// every guest is already present in the artist's name-key set. A single
// unmatched guest preserves the tail unchanged.
func StripGuestTail(title string, artistKeys map[string]bool) string {
	base, guests, ok := FeatTail(title)
	if !ok || base == "" {
		return title
	}

	names := SplitCredits(guests)
	if len(names) == 0 {
		return title
	}
	for _, name := range names {
		name = qualifierRegexp.ReplaceAllString(name, "")
		if !artistKeys[NameKey(name)] {
			return title
		}
	}
	return base
}
