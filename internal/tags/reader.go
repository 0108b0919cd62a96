package tags

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2"

	"github.com/onairkit/radiotext/internal/model"
)

// ReadFields reads the artist and title frames from an MP3 file.
//
// Returns an error if the file cannot be opened or carries no usable
// title. A missing artist frame is not an error; title-only records are
// valid downstream.
func ReadFields(path string) (model.Fields, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: []string{"Artist", "Title"}})
	if err != nil {
		return model.Fields{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer tag.Close()

	f := model.Fields{
		Artist: strings.TrimSpace(tag.Artist()),
		Title:  strings.TrimSpace(tag.Title()),
	}
	if f.Title == "" {
		return model.Fields{}, fmt.Errorf("no title frame in %s", path)
	}
	return f, nil
}

// Raw synthesizes the delimited raw record the parser expects from
// tag-derived fields.
func Raw(f model.Fields, delimiter string) string {
	if delimiter == "" {
		delimiter = model.DelimiterUnit
	}
	return f.Artist + delimiter + f.Title
}
