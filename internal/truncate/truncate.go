package truncate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/onairkit/radiotext/internal/credits"
	"github.com/onairkit/radiotext/internal/model"
	"github.com/onairkit/radiotext/internal/tail"
)

// Ellipsis marks discarded text. Three ASCII dots, never U+2026, which
// the character repertoire would reject anyway.
const Ellipsis = "..."

// strategy is one shortening transform. Strategies never produce a final
// string themselves; Fit re-checks the budget after each one.
type strategy struct {
	name  string
	apply func(artist, title string) (string, string)
}

// cascade builds the fixed priority list applied before the engine
// starts cutting inside fields. The drop-feat step closes over the
// original title: when compact-feat already rewrote the tail to the
// "& Guest" form, the full tail is still removable from the original.
func cascade(origTitle string) []strategy {
	return []strategy{
		{"compact-feat", func(a, t string) (string, string) {
			return credits.CompactFeat(a), credits.CompactFeat(t)
		}},
		{"drop-feat", func(a, t string) (string, string) {
			if stripped := credits.StripFeat(t); stripped != t {
				return a, stripped
			}
			if base, _, ok := credits.FeatTail(origTitle); ok && base != "" {
				return a, base
			}
			return a, t
		}},
		{"drop-version", func(a, t string) (string, string) {
			return a, tail.StripVersion(t)
		}},
		{"drop-dash-suffix", func(a, t string) (string, string) {
			return a, tail.StripDashSuffix(t)
		}},
		{"drop-brackets", dropBrackets},
	}
}

// Fit shortens artist and title until their joined form fits the budget
// in opts, applying the strategy cascade first and cutting inside fields
// only as a last resort. It returns the fitted string, or "" when
// nothing broadcastable survives.
func Fit(artist, title string, opts *model.Options) string {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = model.DefaultMaxLen
	}
	joiner := opts.Joiner
	if joiner == "" {
		joiner = model.DefaultJoiner
	}

	a := strings.TrimSpace(artist)
	t := strings.TrimSpace(title)
	if a == "" && t == "" {
		return ""
	}

	out := join(a, t, joiner)
	if Count(out) <= maxLen {
		return finalize(out, maxLen)
	}

	for _, st := range cascade(t) {
		a2, t2 := st.apply(a, t)
		a2, t2 = strings.TrimSpace(a2), strings.TrimSpace(t2)
		if a2 == a && t2 == t {
			continue
		}
		a, t = a2, t2
		out = join(a, t, joiner)
		if Count(out) <= maxLen {
			return finalize(out, maxLen)
		}
	}

	// Preserve-title-first: hold the title fixed and squeeze only the
	// artist into the remaining budget.
	if a != "" && t != "" {
		if squeezed, ok := squeezeArtist(a, t, joiner, maxLen); ok {
			return finalize(squeezed, maxLen)
		}
	}

	// The title itself must be cut.
	if cut, ok := cutTitle(a, t, joiner, maxLen); ok {
		return finalize(cut, maxLen)
	}

	// Final fallback: ellipsize the combined string.
	return finalize(ellipsize(join(a, t, joiner), maxLen), maxLen)
}

// join composes the visible line from whichever fields are non-empty.
func join(artist, title, joiner string) string {
	switch {
	case artist == "":
		return title
	case title == "":
		return artist
	default:
		return artist + joiner + title
	}
}

// acronymHeadRegexp matches a short all-caps acronym, dotted or not:
// "TSOP", "T.S.O.P.", "E.L.O".
var acronymHeadRegexp = regexp.MustCompile(`^[A-Z](\.?[A-Z]){1,7}\.?$`)

// dropBrackets removes a trailing bracket group from both fields, with
// one exception: an acronym artist whose bracket spells out the full
// name is replaced by that name instead of losing it
// ("T.S.O.P. (The Sound Of Philadelphia)" -> "The Sound Of
// Philadelphia").
func dropBrackets(a, t string) (string, string) {
	if phrase, ok := acronymExpansion(a); ok {
		a = phrase
	} else {
		a = tail.StripTrailingBracket(a)
	}
	return a, tail.StripTrailingBracket(t)
}

var acronymBracketRegexp = regexp.MustCompile(`^(.+?)\s*[(\[{]\s*([^()\[\]{}]+?)\s*[)\]}]\s*$`)

func acronymExpansion(a string) (string, bool) {
	m := acronymBracketRegexp.FindStringSubmatch(a)
	if m == nil {
		return "", false
	}
	head := strings.TrimSpace(m[1])
	inner := strings.TrimSpace(m[2])
	if !acronymHeadRegexp.MatchString(head) {
		return "", false
	}
	if len(strings.Fields(inner)) < 2 {
		return "", false
	}
	return inner, true
}

// squeezeArtist fits the artist into maxLen minus the untouched title.
// A word-boundary cut of the whole artist string is used unless it would
// land inside the first credited name; then the artist collapses to the
// longest prefix of complete credited names, or to the first name alone.
func squeezeArtist(a, t, joiner string, maxLen int) (string, bool) {
	budget := maxLen - Count(joiner) - Count(t)
	if budget < 1 {
		return "", false
	}
	if Count(a) <= budget {
		return join(a, t, joiner), true
	}

	names := credits.SplitCredits(a)
	first := a
	if len(names) > 0 {
		first = names[0]
	}

	if wc := trimDangling(wordCut(a, budget-len(Ellipsis))); wc != "" && Count(wc) >= Count(first) {
		return join(wc+Ellipsis, t, joiner), true
	}

	// Longest prefix of complete credited names that fits.
	best := ""
	for i := 1; i < len(names); i++ {
		cand := strings.Join(names[:i], ", ") + Ellipsis
		if Count(cand) > budget {
			break
		}
		best = cand
	}
	if best != "" {
		return join(best, t, joiner), true
	}

	fallback := first
	if len(names) > 1 {
		fallback += Ellipsis
	}
	if Count(fallback) <= budget {
		return join(fallback, t, joiner), true
	}
	return "", false
}

// cutTitle fixes the artist to its first credited name and word-cuts the
// title into what remains of the budget.
func cutTitle(a, t, joiner string, maxLen int) (string, bool) {
	head := ""
	if a != "" {
		first, more := credits.FirstCredit(a)
		head = first
		if more {
			head += Ellipsis
		}
		head += joiner
	}

	budget := maxLen - Count(head)
	if budget < 1 {
		return "", false
	}
	if Count(t) <= budget {
		return head + t, true
	}

	cut := trimDangling(wordCut(t, budget-len(Ellipsis)))
	if cut == "" {
		return "", false
	}
	return head + cut + Ellipsis, true
}

// ellipsize cuts the combined string at the nearest word boundary within
// maxLen minus the ellipsis. When the boundary cut keeps fewer than
// three usable characters, a hard character cut is used instead.
func ellipsize(s string, maxLen int) string {
	if Count(s) <= maxLen {
		return s
	}
	cut := trimDangling(wordCut(s, maxLen-len(Ellipsis)))
	if usableRunes(cut) < 3 {
		return strings.TrimRight(Cut(s, maxLen), " .,;:!?&/+-")
	}
	return cut + Ellipsis
}

// danglingRegexp matches a stray short fragment after a dash or slash,
// e.g. the "Li" of "A Brand New Day / Li".
var danglingRegexp = regexp.MustCompile(`[-/]\s*[\pL\pN]{1,6}$`)

// trimDangling trims trailing punctuation and a dangling short fragment
// so an ellipsis never follows a lone separator or a cut-off word stub.
func trimDangling(s string) string {
	s = strings.TrimRight(s, " .,;:!?&/+-")
	if danglingRegexp.MatchString(s) {
		s = danglingRegexp.ReplaceAllString(s, "")
		s = strings.TrimRight(s, " .,;:!?&/+-")
	}
	return s
}

func usableRunes(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// finalize enforces the hard budget and the no-usable-content rule: a
// string with no letters or digits carries no broadcast data.
func finalize(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if Count(s) > maxLen {
		s = strings.TrimRight(Cut(s, maxLen), " .,;:!?&/+-")
	}
	if usableRunes(s) == 0 {
		return ""
	}
	return s
}
