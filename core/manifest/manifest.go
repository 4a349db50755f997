// Package manifest describes where parts come from and resolves those
// descriptions into content parts. A manifest is a YAML document naming
// the output media type and an ordered list of part entries:
//
//	output: text/html
//	parts:
//	  - type: text/html
//	    content: "<h1>"
//	  - file: notes.txt
//	  - url: https://example.com/article
//	    main: true
//	  - type: text/html
//	    content: "</h1>"
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/partstream/core"
)

// StdinSource is the file name that stands for standard input.
const StdinSource = "-"

// Entry describes one part. Exactly one of Content, File or URL is set.
type Entry struct {
	Type    string  `yaml:"type,omitempty"`
	Content *string `yaml:"content,omitempty"`
	File    string  `yaml:"file,omitempty"`
	URL     string  `yaml:"url,omitempty"`
	// Main narrows fetched or loaded HTML to its main content container.
	Main bool `yaml:"main,omitempty"`
}

// Manifest is an output type plus the parts rendered into it, in order.
type Manifest struct {
	Output string  `yaml:"output"`
	Parts  []Entry `yaml:"parts"`

	// Dir is the directory relative file entries are resolved against.
	Dir string `yaml:"-"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	m.Dir = filepath.Dir(path)
	return m, nil
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// OutputType returns the parsed output media type, or "" when unset.
func (m *Manifest) OutputType() (core.MediaType, error) {
	if strings.TrimSpace(m.Output) == "" {
		return "", nil
	}
	return core.ParseMediaType(m.Output)
}

// Validate reports every invalid entry, not just the first.
func (m *Manifest) Validate() error {
	var err error
	if _, e := m.OutputType(); e != nil {
		err = multierr.Append(err, fmt.Errorf("output: %w", e))
	}
	for i, e := range m.Parts {
		if verr := e.Validate(); verr != nil {
			err = multierr.Append(err, fmt.Errorf("parts[%d]: %w", i, verr))
		}
	}
	return err
}

// Validate checks that exactly one source is set and the type parses.
func (e Entry) Validate() error {
	sources := 0
	if e.Content != nil {
		sources++
	}
	if e.File != "" {
		sources++
	}
	if e.URL != "" {
		sources++
	}
	if sources != 1 {
		return fmt.Errorf("exactly one of content, file or url is required (got %d)", sources)
	}
	if e.Type != "" {
		if _, err := core.ParseMediaType(e.Type); err != nil {
			return err
		}
	}
	if e.URL != "" && !isURL(e.URL) {
		return fmt.Errorf("url %q must use http or https", e.URL)
	}
	return nil
}

// ParseEntry parses a command line part of the form TYPE:SOURCE or SOURCE,
// where SOURCE is an http(s) URL, a file path or "-" for standard input.
// TYPE is recognized only when it contains a slash, so URLs and Windows
// drive letters are never mistaken for one.
func ParseEntry(s string) (Entry, error) {
	var e Entry
	source := s
	if !isURL(s) {
		if typ, rest, ok := strings.Cut(s, ":"); ok && strings.Contains(typ, "/") {
			e.Type = typ
			source = rest
		}
	}

	switch {
	case source == "":
		return Entry{}, fmt.Errorf("part %q has no source", s)
	case isURL(source):
		e.URL = source
	default:
		e.File = source
	}
	return e, e.Validate()
}

// Inline returns an entry holding content directly.
func Inline(t core.MediaType, content string) Entry {
	return Entry{Type: string(t), Content: &content}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
