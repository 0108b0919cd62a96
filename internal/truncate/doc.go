// Package truncate fits a normalized artist/title pair into the
// RadioText length budget.
//
// Lengths are counted in UTF-16 code units, not runes or bytes, because
// RDS receivers downstream expect UTF-16 length semantics. Supplementary
// plane characters therefore count as two units.
//
// Fit applies a strict priority cascade: exact fit, feat-tail
// compaction, feat-tail removal, version-tail removal, dash-suffix
// removal, trailing-bracket removal, artist squeeze with the title held
// fixed, title word-boundary cut, and finally a plain ellipsized cut.
// Each step runs only when the previous result still exceeds the
// budget, so the cheapest sufficient edit always wins and the result is
// deterministic.
package truncate
