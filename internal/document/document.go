// Package document loads and serves the text displayed by the viewer.
// A Document is the Lines source for the selection engine: logical lines
// are stable indices, content is sanitized once at load time.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// tabStop is the number of spaces a tab expands to. Selection works in
// display columns, so tabs must occupy a fixed width.
const tabStop = 4

// Document holds the text under view as logical lines.
// Safe for concurrent use: the watcher reloads while the UI reads.
type Document struct {
	mu    sync.RWMutex
	path  string
	name  string
	lines []string
}

// Load reads a document from disk.
func Load(path string) (*Document, error) {
	d := &Document{
		path: path,
		name: filepath.Base(path),
	}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// FromString creates an in-memory document, used for stdin input and tests.
func FromString(name, content string) *Document {
	return &Document{
		name:  name,
		lines: splitLines(content),
	}
}

// Reload re-reads the backing file. In-memory documents reload to their
// current content.
func (d *Document) Reload() error {
	if d.path == "" {
		return nil
	}

	data, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", d.path, err)
	}

	d.mu.Lock()
	d.lines = splitLines(string(data))
	d.mu.Unlock()
	return nil
}

// Name returns the display name of the document.
func (d *Document) Name() string {
	return d.name
}

// Path returns the backing file path, or "" for in-memory documents.
func (d *Document) Path() string {
	return d.path
}

// LineAt returns the text of the 0-based logical line.
func (d *Document) LineAt(i int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// LineCount returns the total number of logical lines. Empty content counts
// as one empty line.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.lines)
}

// splitLines sanitizes content and splits it into logical lines.
// ANSI escape sequences are stripped so measured widths match what is
// rendered, and tabs expand to a fixed stop.
func splitLines(content string) []string {
	content = ansi.Strip(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\t", strings.Repeat(" ", tabStop))
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
