// Package compose builds the final output bundle: the RadioText line,
// the RT+ tagged payload and the localized "now playing" prefix.
//
// The RT+ payload is derived from the same length-fitted text as RT, so
// joining its artist and title spans with the joiner reproduces RT
// exactly. The prefix comes from an embedded 29-language catalog of
// native and ASCII-fallback strings and goes through the same
// transliteration and repertoire filtering as the fields.
package compose
