package config

import (
	"path/filepath"
	"testing"

	"github.com/onairkit/radiotext/internal/model"
)

func TestSettings_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	settings := DefaultSettings()
	settings.InputPath = "/var/playout/nowplaying.txt"
	settings.Transliterate = true
	settings.PrefixLanguage = "de"
	settings.DelimiterKey = DelimiterKeyTab

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if *loaded != *settings {
		t.Errorf("loaded = %+v, want %+v", loaded, settings)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *settings != *DefaultSettings() {
		t.Errorf("loaded = %+v, want defaults", settings)
	}
}

func TestSettings_Delimiter(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		custom string
		want   string
	}{
		{"unit default", DelimiterKeyUnit, "", model.DelimiterUnit},
		{"unknown key falls back", "bogus", "", model.DelimiterUnit},
		{"tab", DelimiterKeyTab, "", "\t"},
		{"custom", DelimiterKeyCustom, " | ", " | "},
		{"custom empty falls back", DelimiterKeyCustom, "", model.DelimiterUnit},
		{"custom too long falls back", DelimiterKeyCustom, "======", model.DelimiterUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.DelimiterKey = tt.key
			s.CustomDelim = tt.custom

			if got := s.Delimiter(); got != tt.want {
				t.Errorf("Delimiter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSettings_ToOptions(t *testing.T) {
	s := DefaultSettings()
	s.ASCIISafe = true
	s.PrefixLanguage = "fr"
	s.PrefixEnabled = false

	opts := s.ToOptions()

	if !opts.ASCIISafe {
		t.Error("ASCIISafe not carried over")
	}
	if opts.PrefixLanguage != "fr" {
		t.Errorf("PrefixLanguage = %q, want %q", opts.PrefixLanguage, "fr")
	}
	if opts.PrefixEnabled {
		t.Error("PrefixEnabled not carried over")
	}
	if opts.MaxLen != model.DefaultMaxLen {
		t.Errorf("MaxLen = %d, want %d", opts.MaxLen, model.DefaultMaxLen)
	}
}
