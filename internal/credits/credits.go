package credits

import (
	"strings"
	"unicode"

	"github.com/onairkit/radiotext/internal/model"
)

// acronymStopWords may be skipped when matching an acronym against the
// initials of a name ("Electric Light Orchestra (ELO)" but also
// "The Sound Of Philadelphia (TSOP)").
var acronymStopWords = map[string]bool{
	"the": true, "of": true, "and": true, "a": true, "an": true,
	"in": true, "de": true, "la": true, "le": true, "los": true,
	"das": true, "die": true, "der": true,
}

// Resolve collapses redundant credits in one pass: the title loses a
// feat-tail whose guests are all credited in the artist field, and the
// artist loses region suffixes, acronym suffixes and adjacent comma
// duplicates.
func Resolve(f model.Fields) model.Fields {
	if f.Artist == "" {
		return f
	}

	if f.Title != "" {
		f.Title = StripGuestTail(f.Title, GuestSet(f.Artist))
	}

	f.Artist = StripRegionSuffix(f.Artist)
	f.Artist = StripAcronymSuffix(f.Artist)
	f.Artist = CollapseDupes(f.Artist)
	return f
}

// StripAcronymSuffix removes a bracketed acronym that merely repeats the
// initials of the name before it: "Orchestral Manoeuvres in the Dark
// (OMD)" -> "Orchestral Manoeuvres in the Dark". For "A & B (ABBR)" the
// acronym is matched against the last "&"-segment only.
func StripAcronymSuffix(artist string) string {
	m := bracketSuffixRegexp.FindStringSubmatchIndex(artist)
	if m == nil {
		return artist
	}

	abbr := strings.ReplaceAll(strings.TrimSpace(artist[m[2]:m[3]]), ".", "")
	n := len([]rune(abbr))
	if n < 2 || n > 6 || !isLetters(abbr) {
		return artist
	}

	head := strings.TrimSpace(artist[:m[0]])
	if head == "" {
		return artist
	}

	segment := head
	if i := strings.LastIndex(head, "&"); i >= 0 {
		segment = strings.TrimSpace(head[i+1:])
	}
	if segment == "" || !initialsMatch(segment, abbr) {
		return artist
	}
	return head
}

// CollapseDupes removes an adjacent comma duplicate: "A, A, B" -> "A, B"
// when the first segment repeats either the whole remainder or the
// remainder's first credited artist.
func CollapseDupes(artist string) string {
	for {
		head, rest, found := strings.Cut(artist, ",")
		if !found {
			return artist
		}
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return artist
		}

		key := NameKey(head)
		if key == "" {
			return artist
		}
		first, _ := FirstCredit(rest)
		if key != NameKey(rest) && key != NameKey(first) {
			return artist
		}
		artist = rest
	}
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// initialsMatch reports whether abbr equals the initials of name's
// tokens, either including every token or skipping the stop words.
func initialsMatch(name, abbr string) bool {
	tokens := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(tokens) < 2 {
		return false
	}

	var all, significant strings.Builder
	for _, tok := range tokens {
		r := []rune(tok)[0]
		all.WriteRune(r)
		if !acronymStopWords[strings.ToLower(tok)] {
			significant.WriteRune(r)
		}
	}

	return strings.EqualFold(abbr, all.String()) ||
		(significant.Len() > 0 && strings.EqualFold(abbr, significant.String()))
}
