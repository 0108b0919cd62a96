package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/onairkit/radiotext/internal/model"
)

// Delimiter keys accepted in settings files.
const (
	DelimiterKeyUnit   = "unit"
	DelimiterKeyTab    = "tab"
	DelimiterKeyCustom = "custom"
)

// Settings holds all configuration options.
type Settings struct {
	// Input settings
	InputPath     string `json:"input_path"`
	DelimiterKey  string `json:"delimiter_key"` // unit, tab, custom
	CustomDelim   string `json:"custom_delimiter"`
	WatchDebounce int    `json:"watch_debounce_ms"`
	PollInterval  int    `json:"poll_interval_ms"`

	// Engine settings
	Transliterate  bool   `json:"transliterate"`
	ASCIISafe      bool   `json:"ascii_safe"`
	PrefixLanguage string `json:"prefix_language"`
	PrefixEnabled  bool   `json:"prefix_enabled"`

	// Output settings
	OutputPath      string `json:"output_path"`
	CopyToClipboard bool   `json:"copy_to_clipboard"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DelimiterKey:   DelimiterKeyUnit,
		WatchDebounce:  500,
		PollInterval:   2000,
		PrefixLanguage: "en",
		PrefixEnabled:  true,
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "radiotext.json"
	}
	return filepath.Join(dir, "radiotext", "settings.json")
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Delimiter resolves the configured delimiter key to the literal
// separator string. Invalid custom delimiters (empty or longer than five
// characters) fall back to the unit separator.
func (s *Settings) Delimiter() string {
	switch s.DelimiterKey {
	case DelimiterKeyTab:
		return "\t"
	case DelimiterKeyCustom:
		if n := len([]rune(s.CustomDelim)); n >= 1 && n <= 5 {
			return s.CustomDelim
		}
		return model.DelimiterUnit
	default:
		return model.DelimiterUnit
	}
}

// ToOptions converts settings to engine Options.
func (s *Settings) ToOptions() *model.Options {
	opts := model.DefaultOptions()
	opts.Transliterate = s.Transliterate
	opts.ASCIISafe = s.ASCIISafe
	opts.Delimiter = s.Delimiter()
	opts.PrefixLanguage = s.PrefixLanguage
	opts.PrefixEnabled = s.PrefixEnabled
	return opts
}
