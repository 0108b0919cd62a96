// Package normalize implements the per-field cleanup pipeline that turns a
// raw artist or title string into broadcast-safe text.
//
// The pipeline is a fixed, order-dependent sequence of pure string
// transforms; later stages assume the cleanup done by earlier ones:
//
//  1. Strip control and invisible/zero-width/format characters
//  2. Decode HTML entities (named and numeric)
//  3. Fold fullwidth ASCII forms and the ideographic space
//  4. Replace typographic symbols (smart quotes, dashes, ellipsis,
//     spaces, bullets, degree/ohm unit forms, currency signs)
//  5. Strip bracketed noise tags (encoders, rippers, DJ tools, scene
//     markers, bitrate/container tokens) to a bounded fixed point
//  6. Optionally transliterate Cyrillic and Greek to Latin
//  7. Collapse whitespace runs
//  8. Filter to the target character repertoire
//  9. Re-strip noise tags exposed by filtering
//
// Use Field to run the whole pipeline:
//
//	clean := normalize.Field("Bjork — Jóga &amp; more", opts)
//
// Transliterate, Repertoire, StripNoise and Collapse are exported
// individually because the output composer applies them to the localized
// prefix as well.
//
// Every function is a total, stateless transform. The transliteration
// tables are built lazily, exactly once, and never mutated afterwards.
package normalize
