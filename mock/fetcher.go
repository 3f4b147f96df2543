// Package mock provides hand-written mocks for leadgen interfaces.
package mock

import (
	"context"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

var _ leadgen.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of leadgen.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
