package mock

import (
	"context"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

var _ leadgen.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of leadgen.SitemapService.
type SitemapService struct {
	DiscoverPeoplePagesFn func(ctx context.Context, siteURL string) ([]string, error)
}

func (s *SitemapService) DiscoverPeoplePages(ctx context.Context, siteURL string) ([]string, error) {
	return s.DiscoverPeoplePagesFn(ctx, siteURL)
}
