package compose

import (
	"strings"

	"github.com/onairkit/radiotext/internal/model"
	"github.com/onairkit/radiotext/internal/normalize"
	"github.com/onairkit/radiotext/internal/truncate"
)

// RT+ tag markers, literal strings expected by the encoder.
const (
	tagArtist = `\+ar`
	tagTitle  = `\+ti`
	tagEnd    = `\-`
)

// Build assembles the output bundle from resolved fields. The RT line is
// the truncator's result with a defensive final cut and re-filter; the
// RT+ payload and the prefix derive from the same fitted text.
func Build(f model.Fields, opts *model.Options) model.Bundle {
	rt := truncate.Fit(f.Artist, f.Title, opts)
	rt = harden(rt, opts)
	if rt == "" {
		return model.Bundle{}
	}

	b := model.Bundle{
		RT:     rt,
		RTPlus: rtPlus(rt, f, opts),
	}
	if opts.PrefixEnabled && f.Title != "" {
		b.Prefix = Prefix(opts)
	}
	return b
}

// harden re-applies the budget and repertoire guarantees. The truncator
// already honors both; this keeps the invariants local to the composer
// in case a future step between them slips.
func harden(rt string, opts *model.Options) string {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = model.DefaultMaxLen
	}
	if truncate.Count(rt) > maxLen {
		rt = truncate.Cut(rt, maxLen)
	}
	return strings.TrimSpace(normalize.Repertoire(rt, opts))
}

// rtPlus tags the artist and title spans of the fitted RT text. The
// payload re-splits rt once on the first joiner occurrence; records that
// ended up single-field get the short form.
func rtPlus(rt string, f model.Fields, opts *model.Options) string {
	joiner := opts.Joiner
	if joiner == "" {
		joiner = model.DefaultJoiner
	}

	if f.Artist != "" && f.Title != "" {
		if artist, title, found := strings.Cut(rt, joiner); found && artist != "" && title != "" {
			return tagArtist + artist + tagEnd + joiner + tagTitle + title + tagEnd
		}
		// Truncation kept only one side of the record; tag whichever
		// field the surviving text came from.
		if soloArtist(rt, f.Artist) {
			return tagArtist + rt + tagEnd
		}
		return tagTitle + rt + tagEnd
	}
	if f.Title == "" {
		return tagArtist + rt + tagEnd
	}
	return tagTitle + rt + tagEnd
}

// soloArtist reports whether a single-field rt came from the artist.
// The truncator only ever keeps a leading slice of a field, so after
// dropping the ellipsis and any trimmed trailing separators the body
// must be a prefix of the artist.
func soloArtist(rt, artist string) bool {
	body := strings.TrimSuffix(rt, truncate.Ellipsis)
	body = strings.TrimRight(body, " .,;:!?&/+-")
	return body != "" && strings.HasPrefix(artist, body)
}
