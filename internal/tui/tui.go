// Package tui provides a Bubble Tea terminal user interface for radiotext.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/onairkit/radiotext/internal/compose"
	"github.com/onairkit/radiotext/internal/config"
	"github.com/onairkit/radiotext/internal/model"
	"github.com/onairkit/radiotext/internal/pipeline"
	"github.com/onairkit/radiotext/internal/truncate"
	"github.com/onairkit/radiotext/internal/watch"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	rtStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		Padding(0, 1)
)

// State represents the current UI state.
type State int

const (
	StatePreview State = iota
	StateWatching
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   watch.EventLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	settings  *config.Settings
	engine    *pipeline.Engine
	bundle    model.Bundle
	processed bool
	logs      []LogEntry
	verbose   bool
	err       error

	// Watch context
	ctx    context.Context
	cancel context.CancelFunc
	events chan watch.Event

	width  int
	height int
}

// NewModel creates a new TUI model around loaded settings.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "Artist" + settings.Delimiter() + "Title"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StatePreview,
		textInput: ti,
		spinner:   sp,
		settings:  settings,
		engine:    pipeline.NewEngine(settings.ToOptions()),
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// EventMsg is sent when the watch service reports progress.
	EventMsg struct {
		Event watch.Event
	}

	// WatchDoneMsg is sent when the watch loop exits.
	WatchDoneMsg struct {
		Err error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StatePreview {
				return m, tea.Quit
			}
			m.stopWatch()

		case "enter":
			if m.state == StatePreview && m.textInput.Value() != "" {
				m.bundle = m.engine.Process(m.textInput.Value())
				m.processed = true
			}

		case "ctrl+t":
			m.settings.Transliterate = !m.settings.Transliterate
			m.rebuild()

		case "ctrl+a":
			m.settings.ASCIISafe = !m.settings.ASCIISafe
			m.rebuild()

		case "ctrl+l":
			m.settings.PrefixLanguage = nextLanguage(m.settings.PrefixLanguage)
			m.rebuild()

		case "ctrl+p":
			m.settings.PrefixEnabled = !m.settings.PrefixEnabled
			m.rebuild()

		case "ctrl+v":
			m.verbose = !m.verbose

		case "ctrl+w":
			if m.state == StatePreview && m.settings.InputPath != "" {
				m.state = StateWatching
				m.logs = nil
				m.err = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.events = make(chan watch.Event, 32)
				return m, tea.Batch(m.startWatch(), m.listenEvents(), m.spinner.Tick)
			}

		case "ctrl+s":
			if err := m.settings.Save(config.DefaultPath()); err != nil {
				m.err = err
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case EventMsg:
		if msg.Event.Level != watch.LevelVerbose || m.verbose {
			m.logs = append(m.logs, LogEntry{
				Message: msg.Event.Message,
				Level:   msg.Event.Level,
			})
			// Keep only last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}
		cmds = append(cmds, m.listenEvents())

	case WatchDoneMsg:
		if msg.Err != nil && m.ctx.Err() == nil {
			m.err = msg.Err
		}
		m.state = StatePreview
		m.textInput.Focus()
	}

	// Update text input
	if m.state == StatePreview {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// rebuild re-creates the engine after a settings change and re-runs the
// current preview record.
func (m *Model) rebuild() {
	m.engine = pipeline.NewEngine(m.settings.ToOptions())
	if m.processed && m.textInput.Value() != "" {
		m.bundle = m.engine.Process(m.textInput.Value())
	}
}

func (m *Model) stopWatch() {
	if m.state == StateWatching {
		m.cancel()
	}
}

// startWatch launches the watch service in the background.
func (m Model) startWatch() tea.Cmd {
	events := m.events
	svc := watch.NewService(m.settings, func(e watch.Event) {
		select {
		case events <- e:
		default:
		}
	})

	ctx := m.ctx
	return func() tea.Msg {
		err := svc.Run(ctx)
		close(events)
		if err == context.Canceled {
			err = nil
		}
		return WatchDoneMsg{Err: err}
	}
}

// listenEvents waits for the next service event.
func (m Model) listenEvents() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg{Event: e}
	}
}

// nextLanguage cycles through the prefix catalog.
func nextLanguage(code string) string {
	langs := compose.Languages()
	for i, l := range langs {
		if l == code {
			return langs[(i+1)%len(langs)]
		}
	}
	return "en"
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("radiotext"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Broadcast-safe RadioText from now-playing metadata"))
	b.WriteString("\n\n")

	switch m.state {
	case StatePreview:
		b.WriteString(m.viewPreview())
	case StateWatching:
		b.WriteString(m.viewWatching())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewPreview() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter a raw record:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	translitCheck := "[ ]"
	if m.settings.Transliterate {
		translitCheck = "[x]"
	}
	asciiCheck := "[ ]"
	if m.settings.ASCIISafe {
		asciiCheck = "[x]"
	}
	prefixCheck := "[ ]"
	if m.settings.PrefixEnabled {
		prefixCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Transliterate Cyrillic/Greek (ctrl+t)\n", translitCheck))
	b.WriteString(fmt.Sprintf("  %s ASCII-safe output (ctrl+a)\n", asciiCheck))
	b.WriteString(fmt.Sprintf("  %s Localized prefix (ctrl+p)\n", prefixCheck))
	b.WriteString(fmt.Sprintf("  [%s] Prefix language (ctrl+l)\n", m.settings.PrefixLanguage))
	b.WriteString("\n")

	if m.processed {
		b.WriteString(m.viewBundle())
	}

	if m.settings.InputPath != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Input: %s", m.settings.InputPath)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewBundle() string {
	var b strings.Builder

	if m.bundle.Empty() {
		b.WriteString(warningStyle.Render("No broadcastable data"))
		b.WriteString("\n\n")
		return b.String()
	}

	b.WriteString(rtStyle.Render(m.bundle.RT))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d/%d units", truncate.Count(m.bundle.RT), model.DefaultMaxLen)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Prefix: %q\n", m.bundle.Prefix))
	b.WriteString(fmt.Sprintf("  RT+:    %s\n", m.bundle.RTPlus))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewWatching() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Watching %s", m.settings.InputPath)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder
	for _, entry := range m.logs {
		style := infoStyle
		switch entry.Level {
		case watch.LevelError:
			style = errorStyle
		case watch.LevelWarning:
			style = warningStyle
		case watch.LevelSuccess:
			style = successStyle
		case watch.LevelVerbose:
			style = dimStyle
		}
		b.WriteString(style.Render("  " + entry.Message))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateWatching:
		return "esc stop watching • ctrl+v verbose • ctrl+c quit"
	default:
		return "enter preview • ctrl+w watch • ctrl+s save settings • esc quit"
	}
}

// Run starts the TUI program.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
