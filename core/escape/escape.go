// Package escape holds the pure string escapers used by converters.
// Nothing here knows about parts or registries.
package escape

import (
	"strings"

	"golang.org/x/net/html"
)

// HTML escapes s for inclusion in HTML text or attribute values.
// It covers & < > " ' and \r; quotes become numeric references
// (&#34; and &#39;).
func HTML(s string) string {
	return html.EscapeString(s)
}

// markdownSpecial lists the ASCII punctuation CommonMark allows to be
// backslash-escaped and that can change rendering.
const markdownSpecial = "\\`*_{}[]()<>#+-.!|~"

// Markdown backslash-escapes characters that would otherwise be read as
// Markdown syntax, so plain text renders literally.
func Markdown(s string) string {
	if !strings.ContainsAny(s, markdownSpecial) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	// Every special character is ASCII, so other bytes (including
	// invalid UTF-8) are copied untouched.
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(markdownSpecial, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
