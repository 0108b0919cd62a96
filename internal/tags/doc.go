// Package tags reads artist and title metadata from local MP3 files.
//
// Some playout tools advertise the path of the file on air instead of
// writing a text record. When the watched path ends in .mp3, the watch
// service uses this package to pull the artist (TPE1) and title (TIT2)
// frames and synthesize a raw record for the engine.
package tags
