package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/partstream/core"
	"github.com/gaurav-prasanna/partstream/core/extract"
	"github.com/gaurav-prasanna/partstream/core/fetch"
	"github.com/gaurav-prasanna/partstream/core/manifest"
	"github.com/gaurav-prasanna/partstream/core/output"
	"github.com/gaurav-prasanna/partstream/core/sink"
)

// renderOptions holds the render command flags.
type renderOptions struct {
	to           string
	manifestPath string
	outPath      string
	main         bool
	extended     bool
	// entries keeps --part and --text values in command line order.
	entries []manifest.Entry
}

// entryFlag appends to a shared entry list, so that several flags can
// contribute parts while preserving their relative order.
type entryFlag struct {
	entries *[]manifest.Entry
	parse   func(string) (manifest.Entry, error)
	typ     string
}

var _ pflag.Value = (*entryFlag)(nil)

func (f *entryFlag) Set(s string) error {
	e, err := f.parse(s)
	if err != nil {
		return err
	}
	*f.entries = append(*f.entries, e)
	return nil
}

func (f *entryFlag) String() string { return "" }

func (f *entryFlag) Type() string { return f.typ }

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render parts into a single output of one media type",
		Long: `Render loads every part, converts it to the output media type and writes
the concatenation.

Parts come from a manifest (--manifest) followed by --part and --text flags
in the order given. A --part value is TYPE:SOURCE or SOURCE, where SOURCE is
a file, an http(s) URL or "-" for standard input. Without TYPE the type is
taken from the server's Content-Type or the file extension. A --text value
is a raw plain text part.

Examples:
  partstream render --to text/html --part text/html:head.html --text "1 < 2"
  partstream render --to text/plain --extended --part https://example.com --main
  partstream render --manifest page.yaml --out build/page.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, opts)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&opts.to, "to", "", "Output media type (overrides the manifest)")
	fl.StringVar(&opts.manifestPath, "manifest", "", "YAML manifest listing the output type and parts")
	fl.StringVar(&opts.outPath, "out", output.Stdout, "Output file, - for standard output")
	fl.BoolVar(&opts.main, "main", false, "Reduce HTML loaded from files and URLs to its main content")
	fl.BoolVar(&opts.extended, "extended", false, "Register the extended converters (HTML, Markdown, JSON, PDF)")
	fl.Var(&entryFlag{entries: &opts.entries, parse: manifest.ParseEntry, typ: "part"}, "part", "Part as TYPE:SOURCE or SOURCE (repeatable)")
	fl.Var(&entryFlag{entries: &opts.entries, parse: parseText, typ: "text"}, "text", "Raw plain text part (repeatable)")
	return cmd
}

func parseText(s string) (manifest.Entry, error) {
	return manifest.Inline(core.TextPlain, s), nil
}

func runRender(cmd *cobra.Command, a *app, opts *renderOptions) error {
	ctx := cmd.Context()

	resolver := &manifest.Resolver{
		Fetcher:   fetch.New(),
		Extractor: extract.New(),
		Stdin:     cmd.InOrStdin(),
	}

	var (
		entries []manifest.Entry
		to      core.MediaType
	)
	if opts.manifestPath != "" {
		m, err := manifest.Load(opts.manifestPath)
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		if to, err = m.OutputType(); err != nil {
			return fmt.Errorf("load: %w", err)
		}
		resolver.Dir = m.Dir
		entries = append(entries, m.Parts...)
		a.log.Debug("Manifest loaded", zap.String("path", opts.manifestPath), zap.Int("parts", len(m.Parts)))
	}
	entries = append(entries, opts.entries...)
	resolver.MainContent = opts.main

	if opts.to != "" {
		t, err := core.ParseMediaType(opts.to)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}
		to = t
	}
	if to == "" {
		return fmt.Errorf("output media type is required: use --to or set output in the manifest")
	}

	reg := a.converterRegistry(opts.extended)

	parts, err := resolver.ResolveAll(ctx, entries)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	for i, p := range parts {
		a.log.Debug("Part loaded", zap.Int("index", i), zap.Stringer("type", p.Type), zap.Int("bytes", len(p.Content)))
	}

	rendered, err := sink.New(to, sink.WithRegistry(reg)).OutputParts(parts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	w := output.NewTo(cmd.OutOrStdout())
	if opts.outPath != output.Stdout && opts.outPath != "" {
		w = output.New(opts.outPath)
	}
	dest, err := w.Write(rendered)
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	a.log.Info("Rendered",
		zap.Stringer("type", to),
		zap.Int("parts", len(parts)),
		zap.Int("bytes", len(rendered)),
		zap.String("destination", dest))
	return nil
}

func newConvertersCmd(a *app) *cobra.Command {
	var extended bool
	cmd := &cobra.Command{
		Use:   "converters",
		Short: "List the registered converter pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := a.converterRegistry(extended)
			var b strings.Builder
			for _, p := range reg.Pairs() {
				fmt.Fprintf(&b, "%s -> %s\n", p.From, p.To)
			}
			if _, err := output.NewTo(cmd.OutOrStdout()).Write(b.String()); err != nil {
				return err
			}
			a.log.Debug("Converters listed", zap.Int("count", reg.Len()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&extended, "extended", false, "Include the extended converters")
	return cmd
}
