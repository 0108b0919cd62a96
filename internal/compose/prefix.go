package compose

import (
	"sort"
	"strings"

	"github.com/onairkit/radiotext/internal/model"
	"github.com/onairkit/radiotext/internal/normalize"
)

// PrefixEntry is one localized "now playing" string pair.
type PrefixEntry struct {
	// Native is the prefix in the language's own script.
	Native string

	// ASCII is the fallback used when the configuration forbids the
	// native form.
	ASCII string
}

// prefixCatalog maps a language code to its localized prefix. The
// strings are stored without trailing space; the composer guarantees
// exactly one.
var prefixCatalog = map[string]PrefixEntry{
	"en": {"Now playing:", "Now playing:"},
	"de": {"Es läuft:", "Es laeuft:"},
	"nl": {"Nu te horen:", "Nu te horen:"},
	"fr": {"Vous écoutez :", "Vous ecoutez :"},
	"es": {"Sonando ahora:", "Sonando ahora:"},
	"it": {"In onda:", "In onda:"},
	"pt": {"A tocar:", "A tocar:"},
	"sv": {"Nu spelas:", "Nu spelas:"},
	"no": {"Nå spilles:", "Na spilles:"},
	"da": {"Nu spiller:", "Nu spiller:"},
	"fi": {"Nyt soi:", "Nyt soi:"},
	"is": {"Í spilun:", "I spilun:"},
	"pl": {"Teraz gramy:", "Teraz gramy:"},
	"cs": {"Právě hraje:", "Prave hraje:"},
	"sk": {"Práve hrá:", "Prave hra:"},
	"hu": {"Most szól:", "Most szol:"},
	"ro": {"Acum rulează:", "Acum ruleaza:"},
	"bg": {"Сега звучи:", "Sega zvuchi:"},
	"ru": {"Сейчас играет:", "Seychas igraet:"},
	"uk": {"Зараз грає:", "Zaraz hraye:"},
	"el": {"Τώρα παίζει:", "Tora paizei:"},
	"tr": {"Şimdi çalıyor:", "Simdi caliyor:"},
	"hr": {"Sada svira:", "Sada svira:"},
	"sr": {"Сада свира:", "Sada svira:"},
	"sl": {"Zdaj igra:", "Zdaj igra:"},
	"et": {"Praegu mängib:", "Praegu mangib:"},
	"lv": {"Tagad skan:", "Tagad skan:"},
	"lt": {"Dabar skamba:", "Dabar skamba:"},
	"ca": {"Ara sona:", "Ara sona:"},
}

// Languages returns the language codes of the prefix catalog, sorted.
func Languages() []string {
	codes := make([]string, 0, len(prefixCatalog))
	for code := range prefixCatalog {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Prefix returns the localized "now playing" prefix for the configured
// language, filtered like any field text, with exactly one trailing
// space. Unknown language codes fall back to English.
func Prefix(opts *model.Options) string {
	entry, ok := prefixCatalog[opts.PrefixLanguage]
	if !ok {
		entry = prefixCatalog["en"]
	}

	if opts.ASCIISafe {
		return ensureSpace(entry.ASCII)
	}

	s := entry.Native
	if opts.Transliterate {
		s = normalize.Transliterate(s)
	}
	s = normalize.Repertoire(s, opts)
	s = strings.TrimSpace(s)
	if !hasLetter(s) {
		s = entry.ASCII
	}
	return ensureSpace(s)
}

func ensureSpace(s string) string {
	return strings.TrimRight(s, " ") + " "
}

func hasLetter(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= 0xC0 {
			return true
		}
	}
	return false
}
