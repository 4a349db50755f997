package converters

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// HTMLToMarkdown converts an HTML fragment into Markdown using
// html-to-markdown.
func HTMLToMarkdown(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

var (
	headingRegex    = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)
	emphasisRegex   = regexp.MustCompile(`\*{1,3}([^*\n]+)\*{1,3}`)
	linkRegex       = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]+\)`)
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
	listMarkerRegex = regexp.MustCompile(`(?m)^(\s*)(?:[-*+]|\d+\.)\s+`)
	blankRunRegex   = regexp.MustCompile(`\n{3,}`)
	escapedRegex    = regexp.MustCompile("\\\\([\\\\`*_{}\\[\\]()<>#+\\-.!|~])")
)

// Backslash escapes are parked as a marker rune followed by escapeBase+c
// while formatting is stripped. Marker runes already present in the input
// are doubled, so unparking restores input runes exactly.
const (
	escapeMarker = '\uE000'
	escapeBase   = 0xE001
)

// MarkdownToText removes common Markdown formatting, keeping the text.
// Backslash-escaped characters come out as literals.
func MarkdownToText(md string) string {
	text := strings.ReplaceAll(md, string(escapeMarker), string([]rune{escapeMarker, escapeMarker}))
	text = escapedRegex.ReplaceAllStringFunc(text, func(m string) string {
		return string([]rune{escapeMarker, rune(escapeBase + int(m[1]))})
	})
	text = headingRegex.ReplaceAllString(text, "$1")
	text = listMarkerRegex.ReplaceAllString(text, "$1")
	text = emphasisRegex.ReplaceAllString(text, "$1")
	text = linkRegex.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "```", "")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = blankRunRegex.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(unpark(text))
}

func unpark(text string) string {
	if !strings.ContainsRune(text, escapeMarker) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	marked := false
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case marked && r == escapeMarker:
			b.WriteRune(escapeMarker)
			marked = false
		case marked:
			b.WriteRune(r - escapeBase)
			marked = false
		case r == escapeMarker:
			marked = true
		default:
			// Copy raw bytes so invalid UTF-8 survives.
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}
