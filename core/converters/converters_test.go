package converters

import (
	"errors"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/partstream/core"
	"github.com/gaurav-prasanna/partstream/core/convert"
	"github.com/gaurav-prasanna/partstream/core/part"
	"github.com/gaurav-prasanna/partstream/core/sink"
)

func TestRegister(t *testing.T) {
	reg := convert.NewWithBuiltins()
	Register(reg)

	pairs := []convert.Pair{
		{From: core.TextPlain, To: core.TextHTML},
		{From: core.TextHTML, To: core.TextMarkdown},
		{From: core.TextHTML, To: core.TextPlain},
		{From: core.TextMarkdown, To: core.TextPlain},
		{From: core.TextPlain, To: core.TextMarkdown},
		{From: core.TextPlain, To: core.ApplicationJSON},
		{From: core.TextMarkdown, To: core.ApplicationPDF},
	}
	for _, p := range pairs {
		if _, ok := reg.Lookup(p.From, p.To); !ok {
			t.Errorf("%s → %s not registered", p.From, p.To)
		}
	}
	if reg.Len() != len(pairs) {
		t.Errorf("Len() = %d, want %d", reg.Len(), len(pairs))
	}

	// Still single hop: there is no markdown → html path.
	_, err := part.New(core.TextMarkdown, "# x").Convert(reg, core.TextHTML)
	if !errors.Is(err, core.ErrConversionNotFound) {
		t.Errorf("markdown → html err = %v, want ErrConversionNotFound", err)
	}
}

func TestDefaultRegistryUntouched(t *testing.T) {
	Register(convert.New())
	if _, ok := convert.Default().Lookup(core.TextHTML, core.TextMarkdown); ok {
		t.Error("extended converters leaked into the default registry")
	}
}

func TestHTMLToMarkdown(t *testing.T) {
	got, err := HTMLToMarkdown(`<h1>Title</h1><p>Some <strong>bold</strong> text.</p>`)
	if err != nil {
		t.Fatalf("HTMLToMarkdown: %v", err)
	}
	for _, want := range []string{"# Title", "**bold**"} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown %q does not contain %q", got, want)
		}
	}
}

func TestHTMLToText(t *testing.T) {
	got, err := HTMLToText(`<p>Hello <b>world</b></p><script>alert(1)</script><style>p{}</style>`)
	if err != nil {
		t.Fatalf("HTMLToText: %v", err)
	}
	if got != "Hello world" {
		t.Errorf("HTMLToText = %q, want %q", got, "Hello world")
	}
}

func TestMarkdownToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"heading", "## Section", "Section"},
		{"emphasis", "a **bold** and *it* word", "a bold and it word"},
		{"link", "see [docs](https://example.com)", "see docs"},
		{"image", "![alt](pic.png)", "alt"},
		{"inline code", "run `go test`", "run go test"},
		{"list", "- one\n- two\n1. three", "one\ntwo\nthree"},
		{"escapes", `\*not bold\* \# nope`, "*not bold* # nope"},
		{"blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"private use input kept", "x\ue02ay \ue000\ue02a", "x\ue02ay \ue000\ue02a"},
		{"private use next to escape", "\ue000\\*\ue001", "\ue000*\ue001"},
		{"invalid utf-8 kept", "a\xff \\*b", "a\xff *b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarkdownToText(tt.in); got != tt.want {
				t.Errorf("MarkdownToText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextToJSON(t *testing.T) {
	got, err := TextToJSON("say \"hi\" <now>\n")
	if err != nil {
		t.Fatalf("TextToJSON: %v", err)
	}
	if want := `"say \"hi\" <now>\n"`; got != want {
		t.Errorf("TextToJSON = %s, want %s", got, want)
	}
}

func TestMarkdownToPDF(t *testing.T) {
	md := "# Title\n\nParagraph with **bold**.\n\n- item\n1. first\n\n```\ncode\n```\n"
	got, err := MarkdownToPDF(md)
	if err != nil {
		t.Fatalf("MarkdownToPDF: %v", err)
	}
	if !strings.HasPrefix(got, "%PDF-") {
		t.Errorf("output does not start with a PDF header: %q", got[:min(len(got), 16)])
	}
}

func TestSinkWithExtendedRegistry(t *testing.T) {
	reg := convert.NewWithBuiltins()
	Register(reg)

	got, err := sink.New(core.TextPlain, sink.WithRegistry(reg)).Output(
		part.New(core.TextHTML, "<p>Hi <i>there</i></p>"),
		" ",
		part.New(core.TextMarkdown, "**you**"),
	)
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if got != "Hi there you" {
		t.Errorf("Output = %q, want %q", got, "Hi there you")
	}
}
