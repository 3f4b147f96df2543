package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"github.com/beevik/etree"
)

// Compile-time interface verification.
var _ leadgen.SitemapService = (*SitemapService)(nil)

// peoplePageKeywords mark sitemap URLs likely to list people.
var peoplePageKeywords = []string{
	"team", "leadership", "management", "staff", "people",
	"about", "contact", "office", "location",
}

// SitemapService discovers candidate people pages from a site's
// sitemap.xml. It complements the classifier's link-based discovery for
// sites whose navigation is script-rendered.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverPeoplePages fetches /sitemap.xml for the site and returns the
// URLs whose paths contain a people-page keyword, in sitemap order.
// A missing or malformed sitemap yields an empty slice, not an error.
func (s *SitemapService) DiscoverPeoplePages(ctx context.Context, siteURL string) ([]string, error) {
	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("invalid site URL: %w", err)
	}

	sitemapURL := base.Scheme + "://" + base.Host + "/sitemap.xml"
	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return []string{}, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return []string{}, nil
	}

	root := doc.Root()
	if root == nil || root.Tag != "urlset" {
		return []string{}, nil
	}

	var pages []string
	seen := make(map[string]bool)
	for _, urlElem := range root.SelectElements("url") {
		loc := urlElem.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u == "" || seen[u] {
			continue
		}
		if !isPeoplePage(u) {
			continue
		}
		seen[u] = true
		pages = append(pages, u)
	}
	return pages, nil
}

func (s *SitemapService) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}
	return io.ReadAll(resp.Body)
}

func isPeoplePage(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	for _, kw := range peoplePageKeywords {
		if strings.Contains(path, kw) {
			return true
		}
	}
	return false
}
