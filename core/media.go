// Package core defines the shared vocabulary for partstream.
// Media types name content encodings; every other package converts,
// loads or assembles content tagged with one of them.
package core

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"
)

// MediaType is an opaque identifier for a content encoding, such as
// "text/plain" or "text/html". Equality is the only supported relation:
// there is no wildcard or hierarchy matching.
type MediaType string

// Well-known media types.
const (
	TextPlain       MediaType = "text/plain"
	TextHTML        MediaType = "text/html"
	TextMarkdown    MediaType = "text/markdown"
	ApplicationJSON MediaType = "application/json"
	ApplicationPDF  MediaType = "application/pdf"
)

// String returns the media type as a plain string.
func (t MediaType) String() string {
	return string(t)
}

// ParseMediaType normalizes a user or protocol supplied media type:
// parameters are dropped, the result is lowercased and trimmed.
// It is meant for loaders (HTTP headers, CLI flags), never for lookups.
func ParseMediaType(s string) (MediaType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty media type")
	}
	mt, _, err := mime.ParseMediaType(s)
	if err != nil {
		return "", fmt.Errorf("parsing media type %q: %w", s, err)
	}
	return MediaType(mt), nil
}

// ErrConversionNotFound is matched (via errors.Is) by every
// *ConversionNotFoundError.
var ErrConversionNotFound = errors.New("conversion not found")

// ConversionNotFoundError reports a non-identity conversion for which no
// direct converter is registered.
type ConversionNotFoundError struct {
	From MediaType
	To   MediaType
}

func (e *ConversionNotFoundError) Error() string {
	return fmt.Sprintf("no conversion found from %s to %s", e.From, e.To)
}

// Is makes errors.Is(err, ErrConversionNotFound) succeed.
func (e *ConversionNotFoundError) Is(target error) bool {
	return target == ErrConversionNotFound
}

// FetchResult holds fetched content and the media type the server declared.
type FetchResult struct {
	URL        string
	StatusCode int
	Type       MediaType
	Content    string
}

// Fetcher retrieves remote content for a part.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor isolates the main content of an HTML document.
type Extractor interface {
	Extract(html string) (string, error)
}
