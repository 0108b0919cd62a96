// Package lock prevents two radiotext instances from feeding the same
// encoder outputs at once, using an exclusive PID lockfile.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// ErrHeld is returned when another live instance holds the lock.
var ErrHeld = fmt.Errorf("another instance is already running")

// Lock is an acquired instance lock.
type Lock struct {
	path string
}

// Acquire takes the instance lock at path, writing the current PID. A
// lockfile whose PID no longer maps to a live process is treated as
// stale and replaced.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			fmt.Fprintf(f, "%d\n", os.Getpid())
			f.Close()
			return &Lock{path: path}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create lockfile: %w", err)
		}
		if !stale(path) {
			return nil, ErrHeld
		}
		os.Remove(path)
	}
	return nil, ErrHeld
}

// Release removes the lockfile. Safe to call once per acquired lock.
func (l *Lock) Release() error {
	return os.Remove(l.path)
}

// stale reports whether the lockfile's PID no longer refers to a live
// process. Unreadable contents count as stale.
func stale(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return true
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return true
	}
	if pid == os.Getpid() {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return true
	}
	// Signal 0 probes existence without disturbing the process.
	return proc.Signal(syscall.Signal(0)) != nil
}
