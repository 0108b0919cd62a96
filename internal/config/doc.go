// Package config provides configuration management for radiotext.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to the engine Options consumed by the pipeline
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Unit-separator delimiter, English prefix, clipboard off
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.PrefixLanguage = "de"
//	err := settings.Save("/path/to/config.json")
package config
