package parse

import (
	"testing"

	"github.com/onairkit/radiotext/internal/model"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantArtist string
		wantTitle  string
		wantOK     bool
	}{
		{
			name:       "single delimiter splits both fields",
			raw:        "Queen␟Bohemian Rhapsody",
			wantArtist: "Queen",
			wantTitle:  "Bohemian Rhapsody",
			wantOK:     true,
		},
		{
			name:       "fields are trimmed",
			raw:        "  Queen  ␟  Bohemian Rhapsody  ",
			wantArtist: "Queen",
			wantTitle:  "Bohemian Rhapsody",
			wantOK:     true,
		},
		{
			name:      "no delimiter keeps everything as title",
			raw:       "Bohemian Rhapsody",
			wantTitle: "Bohemian Rhapsody",
			wantOK:    true,
		},
		{
			name:      "two delimiters keep everything as title",
			raw:       "A␟B␟C",
			wantTitle: "A␟B␟C",
			wantOK:    true,
		},
		{
			name:       "leading byte order mark stripped",
			raw:        "\uFEFFQueen␟Bohemian Rhapsody",
			wantArtist: "Queen",
			wantTitle:  "Bohemian Rhapsody",
			wantOK:     true,
		},
		{
			name:       "bracketed payload extracted from wrapper text",
			raw:        "Now on air [Daft Punk␟Around the World] enjoy",
			wantArtist: "Daft Punk",
			wantTitle:  "Around the World",
			wantOK:     true,
		},
		{
			name:       "combined artist field repaired from dash form",
			raw:        "Daft Punk - One More Time␟",
			wantArtist: "Daft Punk",
			wantTitle:  "One More Time",
			wantOK:     true,
		},
		{
			name:       "track number artist triggers title re-parse",
			raw:        "07␟[Queen] Bohemian Rhapsody",
			wantArtist: "Queen",
			wantTitle:  "Bohemian Rhapsody",
			wantOK:     true,
		},
		{
			name:   "blank input is invalid",
			raw:    "   ",
			wantOK: false,
		},
		{
			name:   "artist without recoverable title is invalid",
			raw:    "Queen␟",
			wantOK: false,
		},
	}

	opts := model.DefaultOptions()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, ok := Split(tt.raw, opts)

			if ok != tt.wantOK {
				t.Fatalf("Split() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if fields.Artist != tt.wantArtist {
				t.Errorf("Artist = %q, want %q", fields.Artist, tt.wantArtist)
			}
			if fields.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", fields.Title, tt.wantTitle)
			}
		})
	}
}

func TestSplit_CustomDelimiter(t *testing.T) {
	opts := model.DefaultOptions()
	opts.Delimiter = "\t"

	fields, ok := Split("Queen\tBohemian Rhapsody", opts)
	if !ok {
		t.Fatal("Split() ok = false, want true")
	}
	if fields.Artist != "Queen" || fields.Title != "Bohemian Rhapsody" {
		t.Errorf("got %q / %q, want Queen / Bohemian Rhapsody", fields.Artist, fields.Title)
	}
}

func TestSplitCombined(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantArtist string
		wantTitle  string
		wantOK     bool
	}{
		{"bracket form", "[Cool Band] Song Name", "Cool Band", "Song Name", true},
		{"dash form", "Cool Band - Song Name", "Cool Band", "Song Name", true},
		{"plain text", "Just a Song", "", "", false},
		{"empty bracket artist", "[  ] Song", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artist, title, ok := splitCombined(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("splitCombined() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if artist != tt.wantArtist || title != tt.wantTitle {
				t.Errorf("got %q / %q, want %q / %q", artist, title, tt.wantArtist, tt.wantTitle)
			}
		})
	}
}
