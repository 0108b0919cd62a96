// Package watch provides the now-playing orchestration logic: watching
// the metadata source, running the engine on every change, and fanning
// the results out to the configured sinks.
//
// # Service
//
// The Service coordinates the whole loop:
//
//  1. Watch the input path (fsnotify, with a polling fallback)
//  2. Debounce rapid writes from the playout tool
//  3. Read the record (text file or MP3 tags)
//  4. Run the pipeline
//  5. Write the output file and/or copy RT to the clipboard
//
// # Basic Usage
//
//	svc := watch.NewService(settings, func(event watch.Event) {
//	    fmt.Println(event.Message)
//	})
//
//	err := svc.Run(ctx) // blocks until ctx is cancelled
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives Event:
//
//	type Event struct {
//	    Message string
//	    Level   EventLevel // Info, Verbose, Warning, Error, Success
//	}
//
// The engine itself is pure; every piece of I/O the application performs
// lives here or in the packages this one calls.
package watch
