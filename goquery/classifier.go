package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

// Ensure Classifier implements leadgen.CompanyClassifier at compile time.
var _ leadgen.CompanyClassifier = (*Classifier)(nil)

// Classifier derives company metadata and candidate people pages from a
// company's landing page.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Per-category caps on discovered pages.
const (
	maxLeadershipPages = 5
	maxContactPages    = 3
	maxAboutPages      = 3
)

// Link selectors per page category, matched against href substrings.
var (
	leadershipLinkSelectors = []string{
		`a[href*=leadership]`,
		`a[href*=team]`,
		`a[href*=management]`,
		`a[href*=executive]`,
		`a[href*=about]`,
		`a[href*=staff]`,
		`a[href*=people]`,
	}
	contactLinkSelectors = []string{
		`a[href*=contact]`,
		`a[href*=reach]`,
		`a[href*=connect]`,
		`a[href*=get-in-touch]`,
		`a[href*=location]`,
		`a[href*=office]`,
	}
	aboutLinkSelectors = []string{
		`a[href*=about]`,
		`a[href*=company]`,
		`a[href*=history]`,
		`a[href*=mission]`,
		`a[href*=values]`,
	}
)

var brandSuffixRe = regexp.MustCompile(`\s*(-|\||::)\s*.*$`)

// Classify parses the landing page and returns company metadata plus the
// leadership, contact, and about pages discovered on it. Never fails; a
// page with no usable markup yields a hostname-derived name and empty page
// lists.
func (c *Classifier) Classify(html string, pageURL string) *leadgen.CompanyInfo {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &leadgen.CompanyInfo{
			Name:    nameFromURL(pageURL),
			Website: websiteFromURL(pageURL),
		}
	}

	return &leadgen.CompanyInfo{
		Name:            c.extractCompanyName(doc, pageURL),
		Website:         c.extractWebsite(doc, pageURL),
		LeadershipPages: c.findPages(doc, pageURL, leadershipLinkSelectors, maxLeadershipPages),
		ContactPages:    c.findPages(doc, pageURL, contactLinkSelectors, maxContactPages),
		AboutPages:      c.findPages(doc, pageURL, aboutLinkSelectors, maxAboutPages),
	}
}

// extractCompanyName tries branding selectors in order, trimming taglines
// after a dash, pipe, or double colon and any trailing corporate suffix.
// Falls back to the hostname.
func (c *Classifier) extractCompanyName(doc *goquery.Document, pageURL string) string {
	selectors := []string{
		"h1",
		".company-name",
		".brand-name",
		".logo-text",
		"title",
		`meta[property="og:title"]`,
		`meta[name="title"]`,
	}

	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		name := strings.TrimSpace(sel.Text())
		if name == "" {
			name, _ = sel.Attr("content")
		}
		name = leadgen.CleanCompanyName(brandSuffixRe.ReplaceAllString(name, ""))
		if len(name) > 3 && len(name) < 100 {
			return name
		}
	}

	return nameFromURL(pageURL)
}

// extractWebsite resolves the canonical site root: canonical link, then
// og:url, then the fetched URL itself.
func (c *Classifier) extractWebsite(doc *goquery.Document, pageURL string) string {
	if canonical, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok {
		if site := websiteFromURL(canonical); site != "" {
			return site
		}
	}
	if ogURL, ok := doc.Find(`meta[property="og:url"]`).Attr("content"); ok {
		if site := websiteFromURL(ogURL); site != "" {
			return site
		}
	}
	if site := websiteFromURL(pageURL); site != "" {
		return site
	}
	return pageURL
}

// findPages collects same-origin link targets matching the selectors,
// deduplicated in discovery order, capped at limit.
func (c *Classifier) findPages(doc *goquery.Document, baseURL string, selectors []string, limit int) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	var pages []string
	seen := make(map[string]bool)
	for _, selector := range selectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Attr("href")
			if !ok || href == "" {
				return
			}
			ref, err := url.Parse(href)
			if err != nil {
				return
			}
			resolved := base.ResolveReference(ref)
			if resolved.Host != base.Host || resolved.Scheme != base.Scheme {
				return
			}
			full := resolved.String()
			if !seen[full] {
				seen[full] = true
				pages = append(pages, full)
			}
		})
	}

	if len(pages) > limit {
		pages = pages[:limit]
	}
	return pages
}

// nameFromURL derives a readable company name from the hostname.
func nameFromURL(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Hostname() == "" {
		return "Unknown Company"
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	name := strings.SplitN(host, ".", 2)[0]
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return name
}

// websiteFromURL reduces a URL to its scheme://host root.
func websiteFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
