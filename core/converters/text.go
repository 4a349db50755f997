package converters

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLToText returns the text content of an HTML fragment, dropping
// script and style bodies.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()
	return doc.Text(), nil
}

// TextToJSON encodes plain text as a JSON string literal.
func TextToJSON(text string) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(text); err != nil {
		return "", fmt.Errorf("encoding JSON string: %w", err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
