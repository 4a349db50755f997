package manifest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/gaurav-prasanna/partstream/core"
)

type stubFetcher struct {
	results map[string]*core.FetchResult
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	if res, ok := f.results[url]; ok {
		return res, nil
	}
	return nil, errors.New("not found")
}

type stubExtractor struct{}

func (stubExtractor) Extract(html string) (string, error) {
	return "[" + html + "]", nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", "<p>a</p>")
	writeFile(t, dir, "b.md", "# b")
	writeFile(t, dir, "c.unknown", "c")

	r := &Resolver{
		Dir: dir,
		Fetcher: &stubFetcher{results: map[string]*core.FetchResult{
			"https://example.com/page": {Type: core.TextHTML, Content: "<main>x</main>"},
		}},
		Extractor: stubExtractor{},
		Stdin:     strings.NewReader("from stdin"),
	}

	tests := []struct {
		name        string
		entry       Entry
		wantType    core.MediaType
		wantContent string
	}{
		{"inline untyped", Inline("", "raw"), core.TextPlain, "raw"},
		{"inline typed", Inline(core.TextHTML, "<br>"), core.TextHTML, "<br>"},
		{"file by extension", Entry{File: "a.html"}, core.TextHTML, "<p>a</p>"},
		{"markdown file", Entry{File: "b.md"}, core.TextMarkdown, "# b"},
		{"unknown extension", Entry{File: "c.unknown"}, core.TextPlain, "c"},
		{"explicit type wins", Entry{Type: "text/plain", File: "a.html"}, core.TextPlain, "<p>a</p>"},
		{"absolute path", Entry{File: filepath.Join(dir, "b.md")}, core.TextMarkdown, "# b"},
		{"url detected type", Entry{URL: "https://example.com/page"}, core.TextHTML, "<main>x</main>"},
		{"url main content", Entry{URL: "https://example.com/page", Main: true}, core.TextHTML, "[<main>x</main>]"},
		{"stdin", Entry{File: StdinSource}, core.TextPlain, "from stdin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Resolve(context.Background(), tt.entry)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if p.Type != tt.wantType || p.Content != tt.wantContent {
				t.Errorf("Resolve = %+v, want {%s %q}", p, tt.wantType, tt.wantContent)
			}
		})
	}
}

func TestResolveMainNeedsHTML(t *testing.T) {
	r := &Resolver{Extractor: stubExtractor{}}
	e := Inline(core.TextPlain, "x")
	e.Main = true
	if _, err := r.Resolve(context.Background(), e); err == nil {
		t.Fatal("expected error extracting main content from plain text")
	}
}

func TestResolveAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.txt", "ok")
	r := &Resolver{Dir: dir, Fetcher: &stubFetcher{}}

	parts, err := r.ResolveAll(context.Background(), []Entry{
		Inline(core.TextHTML, "<b>"),
		{File: "ok.txt"},
	})
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	if len(parts) != 2 || parts[0].Content != "<b>" || parts[1].Content != "ok" {
		t.Errorf("parts = %v", parts)
	}

	parts, err = r.ResolveAll(context.Background(), []Entry{
		{File: "missing.txt"},
		{File: "ok.txt"},
		{URL: "https://example.com/nope"},
		{File: StdinSource},
	})
	if parts != nil {
		t.Errorf("partial parts returned: %v", parts)
	}
	if n := len(multierr.Errors(err)); n != 3 {
		t.Errorf("got %d errors, want 3: %v", n, err)
	}
}

func TestResolveMainContentFlag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.html", "<p>x</p>")
	writeFile(t, dir, "notes.txt", "plain")
	r := &Resolver{Dir: dir, Extractor: stubExtractor{}, MainContent: true}

	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{"html file extracted", Entry{File: "page.html"}, "[<p>x</p>]"},
		{"plain file untouched", Entry{File: "notes.txt"}, "plain"},
		{"inline html untouched", Inline(core.TextHTML, "<i>"), "<i>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Resolve(context.Background(), tt.entry)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if p.Content != tt.want {
				t.Errorf("Content = %q, want %q", p.Content, tt.want)
			}
		})
	}
}
