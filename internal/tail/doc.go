// Package tail strips decorative suffixes from track titles: soundtrack
// and theme credits, language tags, remaster notes, live markers,
// version/mix qualifiers and the like.
//
// The steps run in a fixed order, and every step is conditional: it is
// applied only when it actually changes the title and still leaves
// non-blank text. The single exception by policy is the live-suffix
// strip, which runs regardless of length pressure because live markers
// never belong in RadioText.
//
// StripVersion and StripDashSuffix are exported separately because the
// adaptive truncator re-applies them when the title must be shortened
// under budget pressure.
package tail
