package watch

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readRecord reads the raw now-playing record from a text file. Windows
// playout tools write UTF-16 with a byte-order mark as often as UTF-8,
// so the decoder honors a BOM when present and assumes UTF-8 otherwise.
// The record is the first non-blank line.
func readRecord(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}

	for _, line := range strings.Split(string(decoded), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", nil
}
