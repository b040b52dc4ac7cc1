package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// AttemptCounter is the externally displayed win counter. It stores text so
// that a hand-edited or corrupt value degrades to zero instead of failing.
type AttemptCounter interface {
	Load() (string, error)
	Store(text string) error
}

// ParseAttempts parses counter text, returning 0 for empty or invalid input.
func ParseAttempts(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return n
}

// IncrementAttempts reads the counter, adds one and writes it back. A failed
// load counts as zero.
func IncrementAttempts(c AttemptCounter) (int, error) {
	text, err := c.Load()
	if err != nil {
		text = ""
	}
	n := ParseAttempts(text) + 1
	if err := c.Store(strconv.Itoa(n)); err != nil {
		return n, fmt.Errorf("store attempts: %w", err)
	}
	return n, nil
}

// MemoryAttempts keeps the counter in memory.
type MemoryAttempts struct {
	Text string
}

func (m *MemoryAttempts) Load() (string, error) { return m.Text, nil }

func (m *MemoryAttempts) Store(text string) error {
	m.Text = text
	return nil
}

// FileAttempts keeps the counter in a small text file. A missing file reads
// as empty.
type FileAttempts struct {
	Path string
}

func (f FileAttempts) Load() (string, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (f FileAttempts) Store(text string) error {
	return os.WriteFile(f.Path, []byte(text+"\n"), 0o600)
}
