package tail

import (
	"regexp"
	"strings"

	"github.com/onairkit/radiotext/internal/credits"
)

var (
	soundtrackDashRegexp = regexp.MustCompile(`(?i)\s+-\s+((theme\s+)?from\s+.+|main\s+(title|theme).*|theme(\s+song)?)$`)
	soundtrackParenRegexp = regexp.MustCompile(`(?i)\s*[(\[][^()\[\]]*\b(soundtrack|motion\s+picture|o\.?s\.?t\b\.?|main\s+title|theme\s+from)\b[^()\[\]]*[)\]]\s*$`)

	languageTagRegexp = regexp.MustCompile(`(?i)\s*\((dutch|english|french|german|spanish|italian|portuguese|swedish|norwegian|danish|finnish|polish|czech|greek|turkish|russian|nederlands(talig)?|engels|duits|frans|spaans|italiaans)(\s+(version|versie))?\)\s*$`)

	remasterRegexp = regexp.MustCompile(`(?i)[\s\-(\[]+((19|20)\d{2}\s+)?(digital(ly)?\s+)?(re-?master(ed|ing)?|remasterizad[ao]|remasteris(\x{00E9}|e)e?|rimasterizzat[ao]|neu\s?gemastert)(\s+(version|edition))?(\s+(19|20)\d{2})?[\s)\]]*$`)

	whitelistTailRegexp = regexp.MustCompile(`(?i)\s*[-(\[]+\s*(deluxe(\s+edition)?|bonus\s+track(\s+version)?|explicit(\s+version)?|clean(\s+version)?|expanded(\s+edition)?|single\s+version|album\s+version)\s*[)\]]*\s*$`)

	liveDashRegexp = regexp.MustCompile(`(?i)\s+-\s+live\b.*$`)
	liveInnerRegexp = regexp.MustCompile(`(?i)^(recorded\s+)?live\b`)

	separatorTailRegexp = regexp.MustCompile(`[\s\-/|,;:+&]+$`)

	locationTailRegexp = regexp.MustCompile(`(?i)\s+-\s+(recorded\s+)?(at|@|in)\s+.+$`)
	locationEvidence   = regexp.MustCompile(`(19|20)\d{2}|[,/]`)

	formatTailRegexp = regexp.MustCompile(`(?i)\s*[-(\[]+\s*(in\s+)?(mono|stereo)(\s+(version|mix|sound))?\s*[)\]]*\s*$`)

	versionDashRegexp  = regexp.MustCompile(`(?i)\s+-\s+[^-]{0,40}\b(radio\s+edit|remix|re-?mix|edit|version|mix|mixes|instrumental|dub)$`)
	versionParenRegexp = regexp.MustCompile(`(?i)\s*[(\[][^()\[\]]{0,40}\b(radio\s+edit|remix|re-?mix|edit|version|mix|instrumental|dub)\s*[)\]]\s*$`)

	dashSuffixRegexp = regexp.MustCompile(`(?i)\s+-\s+(acoustic\b.*|unplugged\b.*|live\b.*|[^-]*\bsessions?\b[^-]*)$`)

	trailingQualifierRegexp = regexp.MustCompile(`\s*[(\[][^()\[\]]*[)\]]\s*$`)
)

// Strip removes decorative tail suffixes from a title, in order. Every
// step applies only when it changes the text and leaves it non-blank.
func Strip(title string) string {
	title = applyIf(title, stripSoundtrack)
	title = applyIf(title, func(s string) string { return languageTagRegexp.ReplaceAllString(s, "") })
	title = applyIf(title, func(s string) string { return remasterRegexp.ReplaceAllString(s, "") })
	title = applyIf(title, func(s string) string { return whitelistTailRegexp.ReplaceAllString(s, "") })
	title = applyIf(title, StripLive)
	title = applyIf(title, func(s string) string { return separatorTailRegexp.ReplaceAllString(s, "") })
	title = applyIf(title, stripLocation)
	title = applyIf(title, func(s string) string { return formatTailRegexp.ReplaceAllString(s, "") })
	title = applyIf(title, StripVersion)
	title = applyIf(title, StripDashSuffix)
	title = applyIf(title, collapseDuplicate)
	return strings.TrimSpace(title)
}

// applyIf runs f and keeps its result only when it changed the input and
// left non-blank text.
func applyIf(s string, f func(string) string) string {
	out := strings.TrimSpace(f(s))
	if out == "" || out == s {
		return s
	}
	return out
}

func stripSoundtrack(s string) string {
	s = soundtrackParenRegexp.ReplaceAllString(s, "")
	return soundtrackDashRegexp.ReplaceAllString(s, "")
}

// StripLive removes live markers: "- Live ...", "(Live ...)",
// "[Live ...]", including bracket groups with nested parentheses.
func StripLive(s string) string {
	s = liveDashRegexp.ReplaceAllString(s, "")
	for {
		start, inner, ok := trailingGroup(s)
		if !ok || !liveInnerRegexp.MatchString(strings.TrimSpace(inner)) {
			return s
		}
		s = strings.TrimRight(s[:start], " ")
	}
}

func stripLocation(s string) string {
	m := locationTailRegexp.FindStringIndex(s)
	if m == nil {
		return s
	}
	// A venue tail needs evidence: a year, a comma or a slash.
	if !locationEvidence.MatchString(s[m[0]:]) {
		return s
	}
	return s[:m[0]]
}

// StripVersion removes a trailing version or mix qualifier ("Radio
// Edit", "Extended Mix", "Instrumental", ...), in dash or bracket form.
func StripVersion(s string) string {
	s = versionParenRegexp.ReplaceAllString(s, "")
	return versionDashRegexp.ReplaceAllString(s, "")
}

// StripDashSuffix removes a low-priority dash suffix such as
// "- Acoustic", "- Unplugged" or "- BBC Sessions". The truncator applies
// it again defensively when the title must shrink.
func StripDashSuffix(s string) string {
	return dashSuffixRegexp.ReplaceAllString(s, "")
}

// StripTrailingBracket removes one trailing bracket group, nested
// brackets included. Used by the truncator as a late shortening step.
func StripTrailingBracket(s string) string {
	start, _, ok := trailingGroup(s)
	if !ok {
		return s
	}
	return strings.TrimRight(s[:start], " ")
}

// collapseDuplicate reduces "Title - Title" to "Title" when both halves
// normalize to the same key after dropping a trailing bracket qualifier.
func collapseDuplicate(s string) string {
	left, right, found := strings.Cut(s, " - ")
	if !found || strings.Contains(right, " - ") {
		return s
	}
	leftKey := credits.NameKey(trailingQualifierRegexp.ReplaceAllString(left, ""))
	rightKey := credits.NameKey(trailingQualifierRegexp.ReplaceAllString(right, ""))
	if leftKey == "" || leftKey != rightKey {
		return s
	}
	return strings.TrimSpace(left)
}

var groupCloser = map[byte]byte{')': '(', ']': '[', '}': '{'}

// trailingGroup locates a balanced bracket group that ends the string,
// returning the byte offset of its opener and its inner text.
func trailingGroup(s string) (start int, inner string, ok bool) {
	t := strings.TrimRight(s, " ")
	if t == "" {
		return 0, "", false
	}
	closer := t[len(t)-1]
	opener, isGroup := groupCloser[closer]
	if !isGroup {
		return 0, "", false
	}

	depth := 0
	for i := len(t) - 1; i >= 0; i-- {
		switch t[i] {
		case closer:
			depth++
		case opener:
			depth--
			if depth == 0 {
				return i, t[i+1 : len(t)-1], true
			}
		}
	}
	return 0, "", false
}
