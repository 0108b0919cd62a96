// Package parse splits a raw now-playing record into artist and title.
//
// The policy is deliberately conservative: the record is split only when
// the configured delimiter appears exactly once. Zero or multiple
// occurrences mean the signal is ambiguous, and the whole record becomes
// the title rather than risking a wrong guess.
//
//	fields, ok := parse.Split("Queen␟Bohemian Rhapsody", opts)
//	// fields.Artist == "Queen", fields.Title == "Bohemian Rhapsody"
//
// Two repair passes handle records from filename-based playout setups:
// an artist field paired with an empty title is re-parsed as
// "[Artist] Title" or "Artist - Title", and a bare 1-3 digit track
// number in the artist slot triggers the same re-parse on the title.
package parse
