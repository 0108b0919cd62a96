// Package pipeline wires the stages of one record computation together:
// parse, normalize, tail-strip, credit resolution, truncation and output
// composition.
//
// # Engine
//
// Engine binds an immutable Options value so callers can process records
// repeatedly without threading configuration through every call:
//
//	engine := pipeline.NewEngine(opts)
//	bundle := engine.Process("Queen␟Bohemian Rhapsody")
//	fmt.Println(bundle.RT) // "Queen - Bohemian Rhapsody"
//
// # Purity
//
// Process is a total function: it never panics and never performs I/O.
// Every malformed input degrades to a smaller output, down to the empty
// bundle. Identical input and options always produce the identical
// bundle, and re-processing an RT line yields it unchanged, so the
// engine is safe to call from any number of goroutines.
package pipeline
