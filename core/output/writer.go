// Package output writes rendered sink output to its destination.
// An empty destination or "-" means standard output; anything else is a
// file path whose parent directories are created on demand.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdout is the destination name for standard output.
const Stdout = "-"

// Writer writes rendered output to a file or an io.Writer.
type Writer struct {
	Path string
	out  io.Writer
}

// New creates a Writer for path. Stdout (or "") selects os.Stdout.
func New(path string) *Writer {
	if path == "" || path == Stdout {
		return &Writer{Path: Stdout, out: os.Stdout}
	}
	return &Writer{Path: path}
}

// NewTo creates a Writer that writes to w.
func NewTo(w io.Writer) *Writer {
	return &Writer{Path: Stdout, out: w}
}

// Write stores data at the destination and returns where it went.
func (w *Writer) Write(data string) (string, error) {
	if w.out != nil {
		if _, err := io.WriteString(w.out, data); err != nil {
			return "", fmt.Errorf("writing output: %w", err)
		}
		return w.Path, nil
	}

	dir := filepath.Dir(w.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(w.Path, []byte(data), 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", w.Path, err)
	}
	return w.Path, nil
}
