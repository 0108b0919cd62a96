// Package model defines the core data structures used throughout
// the radiotext application.
//
// # Fields
//
// Fields is the artist/title pair flowing through the pipeline. The parser
// produces it from the raw record, and every later stage (normalizer, tail
// stripper, credits resolver, truncator) consumes and returns refined copies:
//
//	fields := model.Fields{Artist: "Queen", Title: "Bohemian Rhapsody"}
//
// # Options
//
// Options holds the immutable per-invocation configuration. It is owned by
// the caller and never mutated by the pipeline:
//
//	opts := model.DefaultOptions()
//	opts.Transliterate = true
//	opts.PrefixLanguage = "de"
//
// # Bundle
//
// Bundle is the finished result of one computation:
//
//	bundle.Prefix // localized "now playing" text, one trailing space
//	bundle.RT     // RadioText line, at most 64 UTF-16 code units
//	bundle.RTPlus // RT+ tagged artist/title payload
//
// A fresh Bundle is computed independently for every raw record; nothing in
// this package carries state between invocations.
package model
