package normalize

import (
	"regexp"
	"strings"
)

// symbolTable maps typographic and symbol code points to their broadcast
// replacements. Entries that expand to multiple characters (ellipsis,
// currency spellouts) are strings rather than runes.
var symbolTable = map[rune]string{
	// Smart quotes and primes
	'‘': "'", '’': "'", '‚': "'", '‛': "'",
	'′': "'", 'ʼ': "'",
	'“': `"`, '”': `"`, '„': `"`, '‟': `"`,
	'″': `"`,

	// Dash variants
	'‐': "-", '‑': "-", '‒': "-", '–': "-",
	'—': "-", '―': "-", '−': "-", '﹘': "-",
	'﹣': "-", '－': "-",

	// Ellipsis
	'…': "...",

	// Space variants (narrow, figure, hair, no-break)
	' ': " ", ' ': " ", ' ': " ", ' ': " ",
	' ': " ", ' ': " ", ' ': " ", ' ': " ",
	' ': " ", ' ': " ", ' ': " ", ' ': " ",
	' ': " ", ' ': " ",

	// Bullets and middle dots
	'•': " ", '·': " ", '∙': " ", '●': " ",
	'◦': " ", '․': " ",

	// Currency spellouts
	'£': "GBP", '€': "EUR", '¥': "JPY",
	'₩': "KRW", '₹': "INR", '₽': "RUB",
	'₺': "TRY", '₴': "UAH",
}

var ohmRegexp = regexp.MustCompile(`(\d)\s*([kKMGm\x{00B5}u]?)[\x{03A9}\x{2126}]`)

// replaceSymbols applies the fixed symbol-replacement table plus the two
// context-sensitive unit rules: degree signs in temperature context and
// ohm signs preceded by a digit with an optional SI prefix.
func replaceSymbols(s string) string {
	// Temperature units, including the precomposed forms.
	s = strings.ReplaceAll(s, "°C", " C")
	s = strings.ReplaceAll(s, "°F", " F")
	s = strings.ReplaceAll(s, "℃", " C")
	s = strings.ReplaceAll(s, "℉", " F")

	// Electrical units: "50Ω" -> "50 Ohm", "4.7kΩ" -> "4.7 kOhm".
	if strings.ContainsRune(s, 'Ω') || strings.ContainsRune(s, 'Ω') {
		s = ohmRegexp.ReplaceAllStringFunc(s, func(m string) string {
			sub := ohmRegexp.FindStringSubmatch(m)
			prefix := sub[2]
			if prefix == "µ" {
				prefix = "u"
			}
			return sub[1] + " " + prefix + "Ohm"
		})
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rep, ok := symbolTable[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// foldWidth maps fullwidth ASCII forms (U+FF01..U+FF5E) and the
// ideographic space to their standard ASCII equivalents. Fullwidth
// currency signs fold to their narrow forms so the symbol table can spell
// them out afterwards.
func foldWidth(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0xFF01 && r <= 0xFF5E:
			b.WriteRune(r - 0xFEE0)
		case r == 0x3000:
			b.WriteByte(' ')
		case r == 0xFFE0:
			b.WriteByte('c')
		case r == 0xFFE1:
			b.WriteRune('£')
		case r == 0xFFE5:
			b.WriteRune('¥')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
