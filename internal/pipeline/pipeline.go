package pipeline

import (
	"github.com/onairkit/radiotext/internal/compose"
	"github.com/onairkit/radiotext/internal/credits"
	"github.com/onairkit/radiotext/internal/model"
	"github.com/onairkit/radiotext/internal/normalize"
	"github.com/onairkit/radiotext/internal/parse"
	"github.com/onairkit/radiotext/internal/tail"
)

// Process runs the full pipeline on one raw record. Invalid or fully
// filtered-away records produce an empty bundle, never an error.
func Process(raw string, opts *model.Options) model.Bundle {
	if opts == nil {
		opts = model.DefaultOptions()
	}

	fields, ok := parse.Split(raw, opts)
	if !ok {
		return model.Bundle{}
	}

	fields.Artist = normalize.Field(fields.Artist, opts)
	fields.Title = normalize.Field(fields.Title, opts)
	if fields.Title != "" {
		fields.Title = tail.Strip(fields.Title)
	}
	fields = credits.Resolve(fields)

	// Filtering may have emptied either field; the composer handles the
	// artist-only and title-only forms, and Empty means no usable data.
	if fields.Empty() {
		return model.Bundle{}
	}
	return compose.Build(fields, opts)
}

// Engine binds an Options value for repeated processing. The options are
// treated as immutable; changing configuration means making a new
// Engine.
type Engine struct {
	opts *model.Options
}

// NewEngine creates an Engine. A nil opts selects the defaults.
func NewEngine(opts *model.Options) *Engine {
	if opts == nil {
		opts = model.DefaultOptions()
	}
	return &Engine{opts: opts}
}

// Process computes the output bundle for one raw record.
func (e *Engine) Process(raw string) model.Bundle {
	return Process(raw, e.opts)
}

// Options returns the engine's configuration.
func (e *Engine) Options() *model.Options {
	return e.opts
}
