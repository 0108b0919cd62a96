// Package clipboard copies finished RadioText lines to the system
// clipboard, for RDS encoders that are fed by paste.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Available reports whether a system clipboard can be reached on this
// platform.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy places text on the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
