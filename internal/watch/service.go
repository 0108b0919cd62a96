package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/onairkit/radiotext/internal/clipboard"
	"github.com/onairkit/radiotext/internal/config"
	"github.com/onairkit/radiotext/internal/model"
	"github.com/onairkit/radiotext/internal/pipeline"
	"github.com/onairkit/radiotext/internal/tags"
)

// EventLevel indicates the severity/type of a progress message.
type EventLevel int

const (
	LevelInfo EventLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event represents a service progress update.
type Event struct {
	Message string
	Level   EventLevel
}

// Service coordinates the watch loop: source changes in, finished
// RadioText out.
type Service struct {
	settings *config.Settings
	engine   *pipeline.Engine
	onEvent  func(Event)

	mu     sync.Mutex
	lastRT string
}

// NewService creates a Service from settings. onEvent may be nil.
func NewService(settings *config.Settings, onEvent func(Event)) *Service {
	return &Service{
		settings: settings,
		engine:   pipeline.NewEngine(settings.ToOptions()),
		onEvent:  onEvent,
	}
}

// Run watches the configured input path and refreshes the outputs on
// every debounced change. It processes the current content once at
// startup and then blocks until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.settings.InputPath == "" {
		return fmt.Errorf("no input path configured")
	}

	s.event(Event{Message: fmt.Sprintf("Watching %s", s.settings.InputPath), Level: LevelInfo})
	s.Refresh()

	watcher := NewWatcher(
		s.settings.InputPath,
		time.Duration(s.settings.WatchDebounce)*time.Millisecond,
		time.Duration(s.settings.PollInterval)*time.Millisecond,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(ctx, s.Refresh)
	})
	return g.Wait()
}

// Refresh reads the source, runs the engine and publishes the outputs.
// Unchanged RT lines are not republished; the last write wins.
func (s *Service) Refresh() {
	bundle, err := s.ProcessOnce()
	if err != nil {
		s.event(Event{Message: err.Error(), Level: LevelError})
		return
	}

	s.mu.Lock()
	unchanged := bundle.RT == s.lastRT
	s.lastRT = bundle.RT
	s.mu.Unlock()
	if unchanged {
		s.event(Event{Message: "No change", Level: LevelVerbose})
		return
	}

	if bundle.Empty() {
		s.event(Event{Message: "No broadcastable data in record", Level: LevelWarning})
	} else {
		s.event(Event{Message: fmt.Sprintf("RT: %s", bundle.RT), Level: LevelSuccess})
	}
	s.publish(bundle)
}

// ProcessOnce reads the input source and computes one bundle without
// publishing anything.
func (s *Service) ProcessOnce() (model.Bundle, error) {
	raw, err := s.readSource()
	if err != nil {
		return model.Bundle{}, err
	}
	return s.engine.Process(raw), nil
}

// readSource produces the raw record: ID3 frames when the input is an
// MP3, the first line of the file otherwise.
func (s *Service) readSource() (string, error) {
	path := s.settings.InputPath
	if strings.EqualFold(filepath.Ext(path), ".mp3") {
		fields, err := tags.ReadFields(path)
		if err != nil {
			return "", err
		}
		return tags.Raw(fields, s.settings.Delimiter()), nil
	}
	return readRecord(path)
}

// publish fans the bundle out to the configured sinks.
func (s *Service) publish(bundle model.Bundle) {
	if s.settings.OutputPath != "" {
		if err := writeOutput(s.settings.OutputPath, bundle); err != nil {
			s.event(Event{Message: fmt.Sprintf("Error writing output: %v", err), Level: LevelError})
		} else {
			s.event(Event{Message: fmt.Sprintf("Wrote %s", s.settings.OutputPath), Level: LevelVerbose})
		}
	}

	if s.settings.CopyToClipboard && !bundle.Empty() {
		if err := clipboard.Copy(bundle.RT); err != nil {
			s.event(Event{Message: fmt.Sprintf("Error copying to clipboard: %v", err), Level: LevelWarning})
		} else {
			s.event(Event{Message: "Copied RT to clipboard", Level: LevelVerbose})
		}
	}
}

// writeOutput writes the RT line and the RT+ payload, one per line. An
// empty bundle truncates the file so the encoder stops displaying stale
// text.
func writeOutput(path string, bundle model.Bundle) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	content := ""
	if !bundle.Empty() {
		content = bundle.RT + "\n" + bundle.RTPlus + "\n"
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func (s *Service) event(e Event) {
	if s.onEvent != nil {
		s.onEvent(e)
	}
}
