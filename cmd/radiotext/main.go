package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/onairkit/radiotext/internal/clipboard"
	"github.com/onairkit/radiotext/internal/compose"
	"github.com/onairkit/radiotext/internal/config"
	"github.com/onairkit/radiotext/internal/lock"
	"github.com/onairkit/radiotext/internal/model"
	"github.com/onairkit/radiotext/internal/pipeline"
	"github.com/onairkit/radiotext/internal/truncate"
	"github.com/onairkit/radiotext/internal/watch"
)

func main() {
	// Command line flags
	var (
		textFlag      = flag.String("text", "", "Process a single raw record and exit")
		inputFlag     = flag.String("input", "", "Now-playing file to read (overrides config)")
		watchFlag     = flag.Bool("watch", false, "Keep watching the input file for changes")
		outputFlag    = flag.String("output", "", "File to write RadioText lines to (overrides config)")
		clipboardFlag = flag.Bool("clipboard", false, "Copy the RadioText line to the clipboard")
		configFlag    = flag.String("config", "", "Path to config file")
		delimiterFlag = flag.String("delimiter", "", "Field delimiter: unit, tab, or a literal string")
		langFlag      = flag.String("lang", "", "Prefix language code (e.g. en, de, fr)")
		translitFlag  = flag.Bool("translit", false, "Transliterate Cyrillic and Greek to Latin")
		asciiFlag     = flag.Bool("ascii", false, "Restrict output to printable ASCII")
		noPrefixFlag  = flag.Bool("noprefix", false, "Suppress the localized now-playing prefix")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// CLI mode - require a record or an input file
	if *textFlag == "" && *inputFlag == "" && flag.NArg() == 0 && *configFlag == "" {
		fmt.Println("radiotext - Broadcast-safe RadioText from now-playing metadata")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  radiotext -text \"Artist<US>Title\" [options]")
		fmt.Println("  radiotext -input nowplaying.txt [-watch] [options]")
		fmt.Println()
		fmt.Println("Supported prefix languages: " + strings.Join(compose.Languages(), ", "))
		fmt.Println()
		fmt.Println("For interactive mode, use: radiotext-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *inputFlag != "" {
		settings.InputPath = *inputFlag
	}
	if *outputFlag != "" {
		settings.OutputPath = *outputFlag
	}
	if *clipboardFlag {
		settings.CopyToClipboard = true
	}
	if *translitFlag {
		settings.Transliterate = true
	}
	if *asciiFlag {
		settings.ASCIISafe = true
	}
	if *langFlag != "" {
		settings.PrefixLanguage = *langFlag
	}
	if *noPrefixFlag {
		settings.PrefixEnabled = false
	}
	applyDelimiter(settings, *delimiterFlag)

	if settings.CopyToClipboard && !clipboard.Available() {
		fmt.Fprintln(os.Stderr, "Warning: clipboard not available on this platform")
		settings.CopyToClipboard = false
	}

	// One-shot record from -text or a positional argument
	record := *textFlag
	if record == "" && flag.NArg() > 0 {
		record = flag.Arg(0)
	}

	if record != "" {
		engine := pipeline.NewEngine(settings.ToOptions())
		bundle := engine.Process(record)
		printBundle(bundle, *verboseFlag)
		copyIfRequested(settings, bundle)
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, stopping...")
		cancel()
	}()

	service := watch.NewService(settings, func(event watch.Event) {
		if event.Level == watch.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := "   "
		switch event.Level {
		case watch.LevelError:
			prefix = "!! "
		case watch.LevelWarning:
			prefix = " ! "
		case watch.LevelSuccess:
			prefix = " + "
		case watch.LevelInfo:
			prefix = " - "
		}

		fmt.Println(prefix + event.Message)
	})

	if !*watchFlag {
		// Process the input file once
		bundle, err := service.ProcessOnce()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printBundle(bundle, *verboseFlag)
		copyIfRequested(settings, bundle)
		return
	}

	// Only one watcher may feed the encoder at a time
	instanceLock, err := lock.Acquire(lockPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer instanceLock.Release()

	if err := service.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("Stopped.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyDelimiter maps the -delimiter flag onto the settings keys.
func applyDelimiter(settings *config.Settings, value string) {
	switch value {
	case "":
	case "unit":
		settings.DelimiterKey = config.DelimiterKeyUnit
	case "tab":
		settings.DelimiterKey = config.DelimiterKeyTab
	default:
		settings.DelimiterKey = config.DelimiterKeyCustom
		settings.CustomDelim = value
	}
}

func printBundle(bundle model.Bundle, verbose bool) {
	if bundle.Empty() {
		fmt.Println("(no broadcastable data)")
		return
	}

	fmt.Println(bundle.RT)
	if verbose {
		fmt.Printf("  prefix: %q\n", bundle.Prefix)
		fmt.Printf("  rtplus: %s\n", bundle.RTPlus)
		fmt.Printf("  length: %d/%d units\n", truncate.Count(bundle.RT), model.DefaultMaxLen)
	}
}

func copyIfRequested(settings *config.Settings, bundle model.Bundle) {
	if !settings.CopyToClipboard || bundle.Empty() {
		return
	}
	if err := clipboard.Copy(bundle.RT); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

func lockPath() string {
	return filepath.Join(os.TempDir(), "radiotext.lock")
}
