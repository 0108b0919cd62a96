package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/onairkit/radiotext/internal/model"
)

// asciiFolds handles letters that NFD does not decompose to an ASCII base
// (distinct letters in Nordic and Germanic alphabets, not composed
// characters).
var asciiFolds = strings.NewReplacer(
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ß", "ss",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"đ", "d", "Đ", "D",
	"ł", "l", "Ł", "L",
	"ı", "i",
)

// Repertoire restricts s to the character set the configuration allows.
//
// With ASCIISafe, diacritics are folded onto their base letters and
// anything left outside printable ASCII is dropped. With Transliterate
// (and ASCIISafe off), combining marks are stripped and the repertoire is
// ASCII plus Latin-1 Supplement plus Latin Extended-A, so precomposed
// letters like "ö" survive. With neither, only control and invisible
// characters are removed and the original script is preserved.
func Repertoire(s string, opts *model.Options) string {
	switch {
	case opts.ASCIISafe:
		return filterASCII(foldToASCII(s))
	case opts.Transliterate:
		return filterLatin(s)
	default:
		return stripInvisible(s)
	}
}

// foldToASCII decomposes accented letters and drops the combining marks,
// after applying the special folds NFD cannot express.
func foldToASCII(s string) string {
	s = asciiFolds.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// filterASCII keeps only printable ASCII (0x20..0x7E).
func filterASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x20 && r <= 0x7E {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// filterLatin strips combining marks and keeps ASCII, Latin-1 Supplement
// and Latin Extended-A.
func filterLatin(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch {
		case r >= 0x20 && r <= 0x7E:
			b.WriteRune(r)
		case r >= 0xA1 && r <= 0x17F:
			b.WriteRune(r)
		}
	}
	return b.String()
}
