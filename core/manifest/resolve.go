package manifest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/gaurav-prasanna/partstream/core"
	"github.com/gaurav-prasanna/partstream/core/part"
)

// extensionTypes maps file extensions to media types for untyped file entries.
var extensionTypes = map[string]core.MediaType{
	".txt":      core.TextPlain,
	".text":     core.TextPlain,
	".html":     core.TextHTML,
	".htm":      core.TextHTML,
	".xhtml":    core.TextHTML,
	".md":       core.TextMarkdown,
	".markdown": core.TextMarkdown,
	".json":     core.ApplicationJSON,
	".pdf":      core.ApplicationPDF,
}

// Resolver turns entries into parts.
type Resolver struct {
	Fetcher   core.Fetcher
	Extractor core.Extractor
	Stdin     io.Reader
	// Dir is prepended to relative file paths.
	Dir string
	// MainContent extracts the main content of every HTML part loaded from
	// a file or URL, as if each such entry had Main set.
	MainContent bool
}

// Resolve loads a single entry.
//
// The part type is, in order of preference: the entry's explicit type, the
// type the fetcher detected, the type implied by the file extension, and
// text/plain.
func (r *Resolver) Resolve(ctx context.Context, e Entry) (*part.Part, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	var (
		content  string
		detected core.MediaType
		err      error
	)
	switch {
	case e.Content != nil:
		content = *e.Content
	case e.URL != "":
		content, detected, err = r.fetch(ctx, e.URL)
	default:
		content, detected, err = r.readFile(e.File)
	}
	if err != nil {
		return nil, err
	}

	t := core.TextPlain
	switch {
	case e.Type != "":
		if t, err = core.ParseMediaType(e.Type); err != nil {
			return nil, err
		}
	case detected != "":
		t = detected
	}

	if e.Main && t != core.TextHTML {
		return nil, fmt.Errorf("main content extraction needs text/html, got %s", t)
	}
	if e.Main || (r.MainContent && e.Content == nil && t == core.TextHTML) {
		if r.Extractor == nil {
			return nil, fmt.Errorf("main content extraction requested but no extractor configured")
		}
		if content, err = r.Extractor.Extract(content); err != nil {
			return nil, fmt.Errorf("extracting main content: %w", err)
		}
	}
	return part.New(t, content), nil
}

// ResolveAll resolves every entry in order. All failures are reported
// together; no parts are returned if any entry fails.
func (r *Resolver) ResolveAll(ctx context.Context, entries []Entry) ([]*part.Part, error) {
	parts := make([]*part.Part, 0, len(entries))
	var errs error
	for i, e := range entries {
		p, err := r.Resolve(ctx, e)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("part %d (%s): %w", i, e.describe(), err))
			continue
		}
		parts = append(parts, p)
	}
	if errs != nil {
		return nil, errs
	}
	return parts, nil
}

func (r *Resolver) fetch(ctx context.Context, url string) (string, core.MediaType, error) {
	if r.Fetcher == nil {
		return "", "", fmt.Errorf("no fetcher configured for %s", url)
	}
	res, err := r.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", "", err
	}
	return res.Content, res.Type, nil
}

func (r *Resolver) readFile(name string) (string, core.MediaType, error) {
	if name == StdinSource {
		if r.Stdin == nil {
			return "", "", fmt.Errorf("standard input is not available")
		}
		data, err := io.ReadAll(r.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), "", nil
	}

	path := name
	if r.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(r.Dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), extensionTypes[strings.ToLower(filepath.Ext(path))], nil
}

func (e Entry) describe() string {
	switch {
	case e.URL != "":
		return e.URL
	case e.File != "":
		return e.File
	default:
		return "inline"
	}
}
