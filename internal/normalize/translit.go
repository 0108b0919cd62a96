package normalize

import (
	"strings"
	"sync"
)

// cyrillicTable maps Cyrillic letters to Latin approximations. Uppercase
// entries are title-cased so mixed-case names survive transliteration
// readably ("Чайковский" -> "Chaykovskiy").
var cyrillicTable = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l",
	'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s",
	'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "", 'э': "e",
	'ю': "yu", 'я': "ya", 'ё': "yo",
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E",
	'Ж': "Zh", 'З': "Z", 'И': "I", 'Й': "Y", 'К': "K", 'Л': "L",
	'М': "M", 'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S",
	'Т': "T", 'У': "U", 'Ф': "F", 'Х': "Kh", 'Ц': "Ts", 'Ч': "Ch",
	'Ш': "Sh", 'Щ': "Shch", 'Ъ': "", 'Ы': "Y", 'Ь': "", 'Э': "E",
	'Ю': "Yu", 'Я': "Ya", 'Ё': "Yo",

	// Ukrainian, Belarusian, Serbian, Macedonian extras, plus the
	// precomposed accented vowels.
	'є': "ye", 'і': "i", 'ї': "yi", 'ґ': "g", 'ў': "u",
	'ђ': "dj", 'ј': "j", 'љ': "lj", 'њ': "nj", 'ћ': "c", 'џ': "dz",
	'ѓ': "g", 'ќ': "k", 'ѕ': "dz", 'ѐ': "e", 'ѝ': "i",
	'Є': "Ye", 'І': "I", 'Ї': "Yi", 'Ґ': "G", 'Ў': "U",
	'Ђ': "Dj", 'Ј': "J", 'Љ': "Lj", 'Њ': "Nj", 'Ћ': "C", 'Џ': "Dz",
	'Ѓ': "G", 'Ќ': "K", 'Ѕ': "Dz", 'Ѐ': "E", 'Ѝ': "I",
}

// greekTable maps Greek letters, including the precomposed accented
// vowels, to Latin approximations.
var greekTable = map[rune]string{
	'α': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e", 'ζ': "z",
	'η': "i", 'θ': "th", 'ι': "i", 'κ': "k", 'λ': "l", 'μ': "m",
	'ν': "n", 'ξ': "x", 'ο': "o", 'π': "p", 'ρ': "r", 'σ': "s",
	'ς': "s", 'τ': "t", 'υ': "y", 'φ': "f", 'χ': "ch", 'ψ': "ps",
	'ω': "o",
	'ά': "a", 'έ': "e", 'ή': "i", 'ί': "i", 'ό': "o", 'ύ': "y",
	'ώ': "o", 'ϊ': "i", 'ϋ': "y", 'ΐ': "i", 'ΰ': "y",
	'Α': "A", 'Β': "V", 'Γ': "G", 'Δ': "D", 'Ε': "E", 'Ζ': "Z",
	'Η': "I", 'Θ': "Th", 'Ι': "I", 'Κ': "K", 'Λ': "L", 'Μ': "M",
	'Ν': "N", 'Ξ': "X", 'Ο': "O", 'Π': "P", 'Ρ': "R", 'Σ': "S",
	'Τ': "T", 'Υ': "Y", 'Φ': "F", 'Χ': "Ch", 'Ψ': "Ps", 'Ω': "O",
	'Ά': "A", 'Έ': "E", 'Ή': "I", 'Ί': "I", 'Ό': "O", 'Ύ': "Y",
	'Ώ': "O", 'Ϊ': "I", 'Ϋ': "Y",
}

// greekDigraphs are letter pairs whose combined sound differs from the
// letter-by-letter mapping. They run before the single-letter table.
var greekDigraphs = []struct{ from, to string }{
	{"ου", "ou"}, {"ού", "ou"}, {"Ου", "Ou"}, {"Ού", "Ou"},
	{"αι", "ai"}, {"αί", "ai"}, {"Αι", "Ai"}, {"Αί", "Ai"},
	{"ει", "ei"}, {"εί", "ei"}, {"Ει", "Ei"}, {"Εί", "Ei"},
	{"οι", "oi"}, {"οί", "oi"}, {"Οι", "Oi"}, {"Οί", "Oi"},
	{"μπ", "mp"}, {"Μπ", "Mp"},
	{"ντ", "nt"}, {"Ντ", "Nt"},
	{"γκ", "gk"}, {"Γκ", "Gk"}, {"γγ", "ng"},
	{"τσ", "ts"}, {"Τσ", "Ts"}, {"τζ", "tz"}, {"Τζ", "Tz"},
}

var (
	digraphOnce     sync.Once
	digraphReplacer *strings.Replacer
)

// Transliterate maps Cyrillic and Greek code points to Latin letters.
// Text containing neither script is returned unchanged. The digraph
// replacer is built once and reused; the code-point tables are static.
func Transliterate(s string) string {
	if !hasMappedScript(s) {
		return s
	}

	digraphOnce.Do(func() {
		pairs := make([]string, 0, len(greekDigraphs)*2)
		for _, d := range greekDigraphs {
			pairs = append(pairs, d.from, d.to)
		}
		digraphReplacer = strings.NewReplacer(pairs...)
	})
	s = digraphReplacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rep, ok := cyrillicTable[r]; ok {
			b.WriteString(rep)
			continue
		}
		if rep, ok := greekTable[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// hasMappedScript reports whether s contains at least one Greek or
// Cyrillic code point, so the common all-Latin case skips table work.
func hasMappedScript(s string) bool {
	for _, r := range s {
		if r >= 0x0370 && r <= 0x03FF || r >= 0x0400 && r <= 0x04FF {
			return true
		}
	}
	return false
}
