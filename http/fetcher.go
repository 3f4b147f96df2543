// Package http provides HTTP-based implementations of the leadgen fetcher,
// sitemap discovery, and enrichment client.
package http

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements leadgen.Fetcher at compile time.
var _ leadgen.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from URLs using plain HTTP requests with a rotated
// User-Agent. Unlike rod.Fetcher it does not execute JavaScript and is
// suitable for static sites only.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	userAgents []string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgents sets the pool of User-Agent strings to rotate through.
// With an empty pool the Go default User-Agent is sent.
func WithUserAgents(agents []string) Option {
	return func(f *Fetcher) {
		f.userAgents = agents
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if len(f.userAgents) > 0 {
		req.Header.Set("User-Agent", f.userAgents[rand.Intn(len(f.userAgents))])
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
