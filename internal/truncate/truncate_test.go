package truncate

import (
	"strings"
	"testing"

	"github.com/onairkit/radiotext/internal/model"
)

func TestCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"Motörhead", 9},
		{"𝄞", 2}, // above the BMP, counts as a surrogate pair
		{"a𝄞b", 4},
	}

	for _, tt := range tests {
		if got := Count(tt.input); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestCut(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"hello", 3, "hel"},
		{"hello", 10, "hello"},
		{"hello", 0, ""},
		{"a𝄞b", 2, "a"}, // never split a surrogate pair
		{"a𝄞b", 3, "a𝄞"},
	}

	for _, tt := range tests {
		if got := Cut(tt.input, tt.max); got != tt.want {
			t.Errorf("Cut(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

func TestWordCut(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"hello world", 20, "hello world"},
		{"hello world", 8, "hello"},
		{"hello world", 5, "hello"}, // limit lands exactly on the boundary
		{"hello, world", 7, "hello"},
		{"Mr. Big Band", 4, "Mr"},
		{"nospaceatall", 5, ""},
	}

	for _, tt := range tests {
		if got := wordCut(tt.input, tt.max); got != tt.want {
			t.Errorf("wordCut(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name   string
		artist string
		title  string
		want   string
	}{
		{
			name:   "short record untouched",
			artist: "Queen",
			title:  "Bohemian Rhapsody",
			want:   "Queen - Bohemian Rhapsody",
		},
		{
			name:   "artist only",
			artist: "Brian Eno",
			title:  "",
			want:   "Brian Eno",
		},
		{
			name:   "title only",
			artist: "",
			title:  "Bohemian Rhapsody",
			want:   "Bohemian Rhapsody",
		},
		{
			name:   "both empty",
			artist: "",
			title:  "",
			want:   "",
		},
		{
			name:   "feat tail dropped under pressure",
			artist: "Daft Punk",
			title:  "Harder Better Faster Stronger (feat. Pharrell Williams and Nile Rodgers)",
			want:   "Daft Punk - Harder Better Faster Stronger",
		},
		{
			name:   "version tail dropped under pressure",
			artist: "Some Very Long Artist Name Here",
			title:  "A Long Title Here (Extended Club Remix)",
			want:   "Some Very Long Artist Name Here - A Long Title Here",
		},
		{
			name:   "acronym expanded instead of losing the bracket",
			artist: "T.S.O.P. (The Sound Of Philadelphia)",
			title:  "Love Is the Message Tonight",
			want:   "The Sound Of Philadelphia - Love Is the Message Tonight",
		},
		{
			name:   "artist squeezed before the title",
			artist: "Bruce Springsteen & The E Street Band & The Sessions Band",
			title:  "The River",
			want:   "Bruce Springsteen & The E Street Band & The... - The River",
		},
		{
			name:   "no usable content yields empty",
			artist: "",
			title:  "!!!",
			want:   "",
		},
	}

	opts := model.DefaultOptions()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.artist, tt.title, opts)
			if got != tt.want {
				t.Errorf("Fit() = %q, want %q", got, tt.want)
			}
			if Count(got) > opts.MaxLen {
				t.Errorf("Fit() length = %d, exceeds %d", Count(got), opts.MaxLen)
			}
		})
	}
}

func TestFit_CutTitle(t *testing.T) {
	artist := "Audioslave"
	title := "An Extraordinarily Verbose and Meandering Composition About Nothing in Particular at All"

	got := Fit(artist, title, model.DefaultOptions())

	if !strings.HasPrefix(got, "Audioslave - ") {
		t.Errorf("Fit() = %q, want Audioslave prefix kept", got)
	}
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("Fit() = %q, want trailing ellipsis", got)
	}
	if Count(got) > model.DefaultMaxLen {
		t.Errorf("Fit() length = %d, exceeds %d", Count(got), model.DefaultMaxLen)
	}
}

func TestFit_SingleWordFallback(t *testing.T) {
	title := strings.Repeat("x", 70)

	got := Fit("", title, model.DefaultOptions())

	if got != strings.Repeat("x", 64) {
		t.Errorf("Fit() = %q, want a hard 64-unit cut", got)
	}
}

func TestFit_ManyArtists(t *testing.T) {
	artist := "Diana Ross, Michael Jackson, Stevie Wonder, Smokey Robinson, Marvin Gaye"
	title := "Liberation Agitato / A Brand New Day / Liberation Ballet"

	got := Fit(artist, title, model.DefaultOptions())

	if !strings.HasPrefix(got, "Diana Ross") {
		t.Errorf("Fit() = %q, want Diana Ross kept first", got)
	}
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("Fit() = %q, want trailing ellipsis", got)
	}
	if Count(got) > model.DefaultMaxLen {
		t.Errorf("Fit() length = %d, exceeds %d", Count(got), model.DefaultMaxLen)
	}
	if !strings.Contains(got, "Liberation Agitato") {
		t.Errorf("Fit() = %q, want the title to survive the artist squeeze", got)
	}
}

func TestTrimDangling(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"A Brand New Day / Li", "A Brand New Day"},
		{"Some Words -", "Some Words"},
		{"Clean Ending", "Clean Ending"},
	}

	for _, tt := range tests {
		if got := trimDangling(tt.input); got != tt.want {
			t.Errorf("trimDangling(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
