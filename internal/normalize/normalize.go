package normalize

import (
	"html"
	"strings"
	"unicode"

	"github.com/onairkit/radiotext/internal/model"
)

// Field runs the full normalization pipeline on a single artist or title
// field. The result is trimmed, free of control characters and bracketed
// noise tags, and restricted to the repertoire selected by opts.
func Field(s string, opts *model.Options) string {
	s = stripInvisible(s)
	s = decodeEntities(s)
	s = foldWidth(s)
	s = replaceSymbols(s)
	s = StripNoise(s)
	if opts.Transliterate {
		s = Transliterate(s)
	}
	s = Collapse(s)
	s = Repertoire(s, opts)

	// Filtering can re-expose a trailing noise bracket.
	s = StripNoise(s)
	return Collapse(s)
}

// stripInvisible removes control characters and invisible format
// characters (soft hyphen, BOM, zero-width spaces and joiners,
// directional marks). Tabs and line breaks become ordinary spaces so that
// adjacent words do not fuse.
func stripInvisible(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case unicode.Is(unicode.Cc, r) || unicode.Is(unicode.Cf, r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// decodeEntities decodes HTML entities: the named forms playout tools
// emit (&amp; &quot; &apos; &lt; &gt; &nbsp;) plus numeric decimal and
// hexadecimal code points.
func decodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return html.UnescapeString(s)
}

// Collapse squeezes internal whitespace runs to single spaces and trims
// the result.
func Collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
