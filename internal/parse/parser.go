package parse

import (
	"regexp"
	"strings"

	"github.com/onairkit/radiotext/internal/model"
)

var (
	// filename-style combined fields: "[Artist] Title" or "Artist - Title"
	bracketNameRegexp = regexp.MustCompile(`^\[([^\[\]]+)\]\s*(.+)$`)
	dashNameRegexp    = regexp.MustCompile(`^(.+?)\s+-\s+(.+)$`)

	trackNumberRegexp = regexp.MustCompile(`^\d{1,3}$`)
)

// Split parses a raw record into artist and title using the delimiter
// from opts. The second return value is false when no usable title could
// be produced; callers then short-circuit to empty outputs.
func Split(raw string, opts *model.Options) (model.Fields, bool) {
	raw = strings.TrimPrefix(raw, "\uFEFF")

	delim := opts.Delimiter
	if delim == "" {
		delim = model.DelimiterUnit
	}

	// Some playout tools wrap the payload in decorated text; when a
	// bracketed substring carries the delimiter, it is the payload.
	if inner, ok := bracketedPayload(raw, delim); ok {
		raw = inner
	}

	var f model.Fields
	if strings.Count(raw, delim) == 1 {
		artist, title, _ := strings.Cut(raw, delim)
		f.Artist = strings.TrimSpace(artist)
		f.Title = strings.TrimSpace(title)
	} else {
		// Zero or multiple occurrences: ambiguous, keep everything
		// as the title.
		f.Title = strings.TrimSpace(raw)
	}

	if f.Artist != "" && f.Title == "" {
		if artist, title, ok := splitCombined(f.Artist); ok {
			f.Artist, f.Title = artist, title
		}
	}

	if trackNumberRegexp.MatchString(f.Artist) {
		if artist, title, ok := splitCombined(f.Title); ok {
			f.Artist, f.Title = artist, title
		}
	}

	return f, f.Title != ""
}

// bracketedPayload extracts the first bracketed substring of raw that
// itself contains the delimiter.
func bracketedPayload(raw, delim string) (string, bool) {
	for _, pair := range [][2]byte{{'(', ')'}, {'[', ']'}, {'{', '}'}} {
		start := strings.IndexByte(raw, pair[0])
		if start < 0 {
			continue
		}
		end := strings.LastIndexByte(raw, pair[1])
		if end <= start {
			continue
		}
		inner := raw[start+1 : end]
		if strings.Contains(inner, delim) {
			return inner, true
		}
	}
	return "", false
}

// splitCombined parses a filename-style combined field: "[Artist] Title"
// or "Artist - Title". Both sides must be non-blank after trimming.
func splitCombined(s string) (artist, title string, ok bool) {
	if m := bracketNameRegexp.FindStringSubmatch(s); m != nil {
		artist = strings.TrimSpace(m[1])
		title = strings.TrimSpace(m[2])
		return artist, title, artist != "" && title != ""
	}
	if m := dashNameRegexp.FindStringSubmatch(s); m != nil {
		artist = strings.TrimSpace(m[1])
		title = strings.TrimSpace(m[2])
		return artist, title, artist != "" && title != ""
	}
	return "", "", false
}
