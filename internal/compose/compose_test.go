package compose

import (
	"strings"
	"testing"

	"github.com/onairkit/radiotext/internal/model"
	"github.com/onairkit/radiotext/internal/truncate"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name       string
		fields     model.Fields
		wantRT     string
		wantRTPlus string
		wantPrefix string
	}{
		{
			name:       "both fields",
			fields:     model.Fields{Artist: "Daft Punk", Title: "Get Lucky"},
			wantRT:     "Daft Punk - Get Lucky",
			wantRTPlus: `\+arDaft Punk\- - \+tiGet Lucky\-`,
			wantPrefix: "Now playing: ",
		},
		{
			name:       "title only",
			fields:     model.Fields{Title: "Get Lucky"},
			wantRT:     "Get Lucky",
			wantRTPlus: `\+tiGet Lucky\-`,
			wantPrefix: "Now playing: ",
		},
		{
			name:       "artist only gets no prefix",
			fields:     model.Fields{Artist: "Brian Eno"},
			wantRT:     "Brian Eno",
			wantRTPlus: `\+arBrian Eno\-`,
			wantPrefix: "",
		},
		{
			name:   "empty fields give empty bundle",
			fields: model.Fields{},
		},
	}

	opts := model.DefaultOptions()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := Build(tt.fields, opts)

			if bundle.RT != tt.wantRT {
				t.Errorf("RT = %q, want %q", bundle.RT, tt.wantRT)
			}
			if bundle.RTPlus != tt.wantRTPlus {
				t.Errorf("RTPlus = %q, want %q", bundle.RTPlus, tt.wantRTPlus)
			}
			if bundle.Prefix != tt.wantPrefix {
				t.Errorf("Prefix = %q, want %q", bundle.Prefix, tt.wantPrefix)
			}
		})
	}
}

func TestBuild_UnbreakableArtist(t *testing.T) {
	opts := model.DefaultOptions()
	fields := model.Fields{
		Artist: strings.Repeat("X", 70),
		Title:  "Song",
	}

	bundle := Build(fields, opts)

	wantRT := strings.Repeat("X", 64)
	if bundle.RT != wantRT {
		t.Fatalf("RT = %q, want %q", bundle.RT, wantRT)
	}
	// Only the artist survived, so the payload carries the artist tag.
	if want := tagArtist + wantRT + tagEnd; bundle.RTPlus != want {
		t.Errorf("RTPlus = %q, want %q", bundle.RTPlus, want)
	}
}

func TestBuild_PrefixDisabled(t *testing.T) {
	opts := model.DefaultOptions()
	opts.PrefixEnabled = false

	bundle := Build(model.Fields{Artist: "Daft Punk", Title: "Get Lucky"}, opts)

	if bundle.Prefix != "" {
		t.Errorf("Prefix = %q, want empty", bundle.Prefix)
	}
	if bundle.RT != "Daft Punk - Get Lucky" {
		t.Errorf("RT = %q, want %q", bundle.RT, "Daft Punk - Get Lucky")
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	opts := model.DefaultOptions()
	bundle := Build(model.Fields{Artist: "Queen", Title: "Bohemian Rhapsody"}, opts)

	payload := bundle.RTPlus
	payload = strings.TrimPrefix(payload, tagArtist)
	artist, rest, found := strings.Cut(payload, tagEnd+opts.Joiner+tagTitle)
	if !found {
		t.Fatalf("RTPlus = %q, want both tags", bundle.RTPlus)
	}
	title := strings.TrimSuffix(rest, tagEnd)

	if joined := artist + opts.Joiner + title; joined != bundle.RT {
		t.Errorf("rejoined RTPlus = %q, want RT %q", joined, bundle.RT)
	}
}

func TestPrefix(t *testing.T) {
	base := model.DefaultOptions()

	german := model.DefaultOptions()
	german.PrefixLanguage = "de"

	germanASCII := model.DefaultOptions()
	germanASCII.PrefixLanguage = "de"
	germanASCII.ASCIISafe = true

	russian := model.DefaultOptions()
	russian.PrefixLanguage = "ru"

	russianTranslit := model.DefaultOptions()
	russianTranslit.PrefixLanguage = "ru"
	russianTranslit.Transliterate = true

	unknown := model.DefaultOptions()
	unknown.PrefixLanguage = "xx"

	tests := []struct {
		name string
		opts *model.Options
		want string
	}{
		{"english default", base, "Now playing: "},
		{"german native", german, "Es läuft: "},
		{"german ascii fallback", germanASCII, "Es laeuft: "},
		{"russian native preserved", russian, "Сейчас играет: "},
		{"russian transliterated", russianTranslit, "Seychas igraet: "},
		{"unknown code falls back to english", unknown, "Now playing: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prefix(tt.opts); got != tt.want {
				t.Errorf("Prefix() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrefix_Catalog(t *testing.T) {
	langs := Languages()
	if len(langs) != 29 {
		t.Fatalf("Languages() returned %d codes, want 29", len(langs))
	}

	for _, code := range langs {
		entry := prefixCatalog[code]

		for _, r := range entry.ASCII {
			if r < 0x20 || r > 0x7E {
				t.Errorf("lang %s: ASCII form %q contains %q", code, entry.ASCII, r)
			}
		}

		opts := model.DefaultOptions()
		opts.PrefixLanguage = code

		got := Prefix(opts)
		if !strings.HasSuffix(got, " ") || strings.HasSuffix(got, "  ") {
			t.Errorf("lang %s: Prefix() = %q, want exactly one trailing space", code, got)
		}
		if truncate.Count(got) < 2 {
			t.Errorf("lang %s: Prefix() = %q, too short", code, got)
		}

		opts.ASCIISafe = true
		if ascii := Prefix(opts); ascii != entry.ASCII+" " {
			t.Errorf("lang %s: ASCII Prefix() = %q, want %q", code, ascii, entry.ASCII+" ")
		}
	}
}
