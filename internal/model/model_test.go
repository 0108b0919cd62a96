package model

import "testing"

func TestFields_Empty(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		want   bool
	}{
		{"both blank", Fields{}, true},
		{"artist only", Fields{Artist: "Queen"}, false},
		{"title only", Fields{Title: "Bohemian Rhapsody"}, false},
		{"both set", Fields{Artist: "Queen", Title: "Bohemian Rhapsody"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fields.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Delimiter != DelimiterUnit {
		t.Errorf("Delimiter = %q, want %q", opts.Delimiter, DelimiterUnit)
	}
	if opts.MaxLen != DefaultMaxLen {
		t.Errorf("MaxLen = %d, want %d", opts.MaxLen, DefaultMaxLen)
	}
	if opts.Joiner != DefaultJoiner {
		t.Errorf("Joiner = %q, want %q", opts.Joiner, DefaultJoiner)
	}
	if opts.PrefixLanguage != "en" {
		t.Errorf("PrefixLanguage = %q, want %q", opts.PrefixLanguage, "en")
	}
	if opts.Transliterate || opts.ASCIISafe {
		t.Error("mode flags should default to off")
	}
	if !opts.PrefixEnabled {
		t.Error("PrefixEnabled should default to on")
	}
}

func TestBundle_Empty(t *testing.T) {
	if !(Bundle{}).Empty() {
		t.Error("zero Bundle should be empty")
	}
	if (Bundle{RT: "Queen - Bohemian Rhapsody"}).Empty() {
		t.Error("Bundle with RT should not be empty")
	}
}
