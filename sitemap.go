package leadgen

import "context"

// SitemapService discovers candidate people pages for a site without
// parsing its HTML. It complements CompanyClassifier link discovery on
// sites whose navigation is script-rendered.
type SitemapService interface {
	DiscoverPeoplePages(ctx context.Context, siteURL string) ([]string, error)
}
