// Package extract implements core.Extractor.
// It narrows a full HTML page down to the fragment worth embedding in an
// output: the first main content container, with noise elements removed.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultNoise lists the selectors removed before a container is chosen.
var DefaultNoise = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"iframe", "video", "audio", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// DefaultContainers are tried in order; the first match wins.
var DefaultContainers = []string{"main", "article", "body"}

// HTMLExtractor strips noise from HTML and returns the main content fragment.
type HTMLExtractor struct {
	Noise      []string
	Containers []string
}

// New creates an HTMLExtractor with the default selectors.
func New() *HTMLExtractor {
	return &HTMLExtractor{Noise: DefaultNoise, Containers: DefaultContainers}
}

// Extract returns the outer HTML of the first matching container.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range e.Noise {
		doc.Find(sel).Remove()
	}

	for _, tag := range e.Containers {
		sel := doc.Find(tag)
		if sel.Length() == 0 {
			continue
		}
		result, err := goquery.OuterHtml(sel.First())
		if err != nil {
			return "", fmt.Errorf("serializing content: %w", err)
		}
		return result, nil
	}
	return "", fmt.Errorf("no content container found in HTML")
}
