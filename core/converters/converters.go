// Package converters provides library-backed converters that callers can
// add to any registry. None of them is part of convert.Default(); call
// Register to opt in.
package converters

import (
	"github.com/gaurav-prasanna/partstream/core"
	"github.com/gaurav-prasanna/partstream/core/convert"
	"github.com/gaurav-prasanna/partstream/core/escape"
)

// Register adds every extended converter to reg, replacing existing
// entries for the same pairs.
func Register(reg *convert.Registry) {
	reg.Register(core.TextHTML, core.TextMarkdown, HTMLToMarkdown)
	reg.Register(core.TextHTML, core.TextPlain, HTMLToText)
	reg.Register(core.TextMarkdown, core.TextPlain, convert.Pure(MarkdownToText))
	reg.Register(core.TextPlain, core.TextMarkdown, convert.Pure(escape.Markdown))
	reg.Register(core.TextPlain, core.ApplicationJSON, TextToJSON)
	reg.Register(core.TextMarkdown, core.ApplicationPDF, MarkdownToPDF)
}
