package normalize

import (
	"testing"

	"github.com/onairkit/radiotext/internal/model"
)

func TestField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "html entities decoded",
			input: "AC&amp;DC",
			want:  "AC&DC",
		},
		{
			name:  "numeric entity decoded",
			input: "Caf&#233;",
			want:  "Café",
		},
		{
			name:  "control characters removed",
			input: "So\u0000ng",
			want:  "Song",
		},
		{
			name:  "zero width space removed",
			input: "So\u200Bng",
			want:  "Song",
		},
		{
			name:  "tabs become spaces and collapse",
			input: "One\t\tMore   Time",
			want:  "One More Time",
		},
		{
			name:  "smart quotes straightened",
			input: "Don’t Stop Me Now",
			want:  "Don't Stop Me Now",
		},
		{
			name:  "em dash becomes hyphen",
			input: "Crosby — Nash",
			want:  "Crosby - Nash",
		},
		{
			name:  "ellipsis character expanded",
			input: "Wait…",
			want:  "Wait...",
		},
		{
			name:  "fullwidth ascii folded",
			input: "ＡＢＢＡ",
			want:  "ABBA",
		},
		{
			name:  "encoder tag stripped",
			input: "One More Time [LAME 3.99]",
			want:  "One More Time",
		},
		{
			name:  "bitrate tag stripped",
			input: "One More Time (320kbps)",
			want:  "One More Time",
		},
		{
			name:  "ordinary bracket content kept",
			input: "Song (Acoustic)",
			want:  "Song (Acoustic)",
		},
		{
			name:  "empty brackets removed",
			input: "Song ()",
			want:  "Song",
		},
	}

	opts := model.DefaultOptions()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Field(tt.input, opts); got != tt.want {
				t.Errorf("Field(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReplaceSymbols_Units(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"98°F", "98 F"},
		{"20°C", "20 C"},
		{"4.7kΩ", "4.7 kOhm"},
		{"50Ω", "50 Ohm"},
		{"£5 Song", "GBP5 Song"},
		{"€uro", "EURuro"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := replaceSymbols(tt.input); got != tt.want {
				t.Errorf("replaceSymbols(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripNoise(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ripper signature", "Song (ripped by someone)", "Song"},
		{"dj software", "Song [Serato DJ Pro]", "Song"},
		{"scene marker", "Song (Promo Only)", "Song"},
		{"domain name", "Song [www.example.com]", "Song"},
		{"container token", "Song (FLAC)", "Song"},
		{"bit depth", "Song [24bit/96kHz]", "Song"},
		{"adjacent tokens removed to fixpoint", "Song (320) (VBR)", "Song"},
		{"real parenthetical survives", "Time (Clock of the Heart)", "Time (Clock of the Heart)"},
		{"unbalanced bracket left alone", "Song (unclosed", "Song (unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripNoise(tt.input); got != tt.want {
				t.Errorf("StripNoise(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransliterate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"cyrillic", "Кино", "Kino"},
		{"cyrillic digraph letters", "Чайковский", "Chaykovskiy"},
		{"greek", "Παόλα", "Paola"},
		{"greek accented vowels", "Τώρα Πια", "Tora Pia"},
		{"greek digraph", "Μπλε", "Mple"},
		{"latin untouched", "Motörhead", "Motörhead"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transliterate(tt.input); got != tt.want {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRepertoire(t *testing.T) {
	asciiOpts := model.DefaultOptions()
	asciiOpts.ASCIISafe = true

	translitOpts := model.DefaultOptions()
	translitOpts.Transliterate = true

	plainOpts := model.DefaultOptions()

	tests := []struct {
		name  string
		opts  *model.Options
		input string
		want  string
	}{
		{"ascii folds diacritics", asciiOpts, "Björk", "Bjork"},
		{"ascii folds ligature", asciiOpts, "Blæst", "Blaest"},
		{"ascii folds eszett", asciiOpts, "Straße", "Strasse"},
		{"ascii drops non latin", asciiOpts, "Кино", ""},
		{"latin keeps precomposed", translitOpts, "Motörhead", "Motörhead"},
		{"latin drops cyrillic", translitOpts, "Кино", ""},
		{"plain preserves script", plainOpts, "Кино", "Кино"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Repertoire(tt.input, tt.opts); got != tt.want {
				t.Errorf("Repertoire(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  a   b  ", "a b"},
		{"a\u00A0b", "a b"},
		{"", ""},
		{"word", "word"},
	}

	for _, tt := range tests {
		if got := Collapse(tt.input); got != tt.want {
			t.Errorf("Collapse(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
