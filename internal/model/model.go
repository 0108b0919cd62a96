package model

// DelimiterUnit is the default artist/title separator, the Unicode symbol
// for unit separator (U+241F). Playout tools that cannot emit it typically
// fall back to a tab or a custom string.
const DelimiterUnit = "␟"

// DefaultMaxLen is the RadioText transmission limit in UTF-16 code units.
const DefaultMaxLen = 64

// DefaultJoiner separates artist and title in the visible RadioText line.
const DefaultJoiner = " - "

// Fields holds the parsed artist and title of one record.
//
// Artist may be empty (title-only records are valid); a record with an
// empty Title is invalid and short-circuits the pipeline.
type Fields struct {
	// Artist is the credited artist string. Empty when the record could
	// not be split unambiguously.
	Artist string

	// Title is the track title.
	Title string
}

// Empty reports whether both fields are blank.
func (f Fields) Empty() bool {
	return f.Artist == "" && f.Title == ""
}

// Options is the immutable configuration for one pipeline invocation.
//
// The caller owns the value; no pipeline stage mutates it. Zero values are
// not usable directly, use DefaultOptions and adjust.
type Options struct {
	// Transliterate maps Cyrillic and Greek letters to Latin
	// approximations. When false, non-Latin scripts pass through
	// untouched (only control and invisible characters are removed).
	Transliterate bool

	// ASCIISafe restricts every output to printable ASCII (0x20-0x7E),
	// folding diacritics rather than dropping the letters that carry
	// them.
	ASCIISafe bool

	// Delimiter separates artist and title in the raw record. One to
	// five characters.
	Delimiter string

	// MaxLen is the RadioText budget, counted in UTF-16 code units.
	MaxLen int

	// Joiner is placed between artist and title in the output.
	Joiner string

	// PrefixLanguage selects the localized "now playing" prefix by
	// language code (e.g. "en", "de", "el").
	PrefixLanguage string

	// PrefixEnabled controls whether a prefix is emitted at all. When
	// false the bundle's Prefix stays empty even for titled records.
	PrefixEnabled bool
}

// DefaultOptions returns options with default values: unit-separator
// delimiter, 64-unit budget, " - " joiner, English prefix enabled,
// transliteration and ASCII-safe mode off.
func DefaultOptions() *Options {
	return &Options{
		Delimiter:      DelimiterUnit,
		MaxLen:         DefaultMaxLen,
		Joiner:         DefaultJoiner,
		PrefixLanguage: "en",
		PrefixEnabled:  true,
	}
}

// Bundle is the finished output of one computation.
type Bundle struct {
	// Prefix is the localized "now playing" text. It always ends with
	// exactly one trailing space, and is empty when the record carried
	// no broadcastable title.
	Prefix string

	// RT is the RadioText line, at most MaxLen UTF-16 code units, free
	// of control and invisible characters. Empty means "no broadcastable
	// data".
	RT string

	// RTPlus is the tagged artist/title payload built from the same
	// length-fitted text as RT.
	RTPlus string
}

// Empty reports whether the bundle carries no broadcastable data.
func (b Bundle) Empty() bool {
	return b.RT == ""
}
