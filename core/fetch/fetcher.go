// Package fetch implements core.Fetcher over HTTP.
// The response Content-Type becomes the media type of the fetched part.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/partstream/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "partstream/1.0 (https://github.com/gaurav-prasanna/partstream)"
	// maxBodySize is the largest response accepted as a part.
	maxBodySize int64 = 32 << 20
)

// HTTPFetcher fetches part content via HTTP GET.
type HTTPFetcher struct {
	client *http.Client
	// MaxBodySize overrides the default response size cap when positive.
	MaxBodySize int64
}

func (f *HTTPFetcher) limit() int64 {
	if f.MaxBodySize > 0 {
		return f.MaxBodySize
	}
	return maxBodySize
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return NewWithClient(&http.Client{Timeout: defaultTimeout})
}

// NewWithClient creates an HTTPFetcher using the given client.
func NewWithClient(client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

// Fetch retrieves url. A missing or unparsable Content-Type is treated as
// text/html.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,text/plain,text/markdown;q=0.9,*/*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.limit()+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(body)) > f.limit() {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", url, f.limit())
	}

	mt, err := core.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		mt = core.TextHTML
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		Type:       mt,
		Content:    string(body),
	}, nil
}
