// Package credits resolves duplicate and decorative artist credits.
//
// Radio metadata frequently repeats information: a guest credited in the
// artist field shows up again as "(feat. ...)" in the title, an artist
// name carries a region suffix like "(UK)" or "- Netherlands", an
// acronym repeats the initials of the name it follows, or the same name
// appears twice separated by a comma. This package collapses those
// duplicates so the truncator never spends budget on redundant text.
//
// All comparisons go through NameKey, which lowercases, decomposes and
// strips accents, and collapses everything that is not a letter or digit,
// so "Beyoncé" and "beyonce" compare equal.
//
// The feat-tail removal is all-or-nothing: a "(feat. X, Y)" tail is
// removed only when every guest is already credited in the artist field.
// One unknown guest preserves the tail unchanged.
package credits
