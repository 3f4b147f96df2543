// Package rod provides a browser-automation implementation of
// leadgen.Fetcher for JavaScript-rendered company sites.
package rod

import (
	"context"
	"fmt"
	"math/rand"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements leadgen.Fetcher at compile time.
var _ leadgen.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using headless Chrome.
// Fetcher is safe for concurrent use by multiple goroutines; each Fetch
// runs in its own page.
type Fetcher struct {
	browser    *rod.Browser
	launcher   *launcher.Launcher
	userAgents []string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgents sets the pool of User-Agent strings rotated per page.
func WithUserAgents(agents []string) Option {
	return func(f *Fetcher) {
		f.userAgents = agents
	}
}

// NewFetcher launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().Headless(true).NoSandbox(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL in a fresh page and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if len(f.userAgents) > 0 {
		ua := f.userAgents[rand.Intn(len(f.userAgents))]
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: ua}); err != nil {
			return "", err
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	if f.browser == nil {
		return nil
	}
	if err := f.browser.Close(); err != nil {
		return err
	}
	f.launcher.Cleanup()
	return nil
}
