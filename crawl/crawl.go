// Package crawl provides lead-collection orchestration.
// It coordinates company classification, page fetching, person extraction,
// enrichment, and the duplicate gate into a bounded-concurrency session.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"golang.org/x/sync/errgroup"
)

const (
	defaultConcurrency = 3
	defaultMaxPages    = 3

	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Seed is one company website to collect leads from, together with the
// location context it was discovered under.
type Seed struct {
	URL      string
	City     string
	State    string
	LeadType leadgen.LeadType
}

// Result holds the outcome of a collection session.
type Result struct {
	Companies  int // company sites reached
	Pages      int // people pages scanned beyond the landing page
	Leads      int // leads saved
	Duplicates int // candidates rejected by the duplicate gate
	Failed     int // fetch or save failures
}

// Crawler orchestrates lead collection across company websites.
// Fetcher, Classifier, Extractor, and Leads are required; the remaining
// fields are optional and zero values select sensible defaults.
type Crawler struct {
	Fetcher    leadgen.Fetcher
	Classifier leadgen.CompanyClassifier
	Extractor  leadgen.PersonExtractor
	Leads      leadgen.LeadService
	Enricher   leadgen.Enricher       // optional contact enrichment
	Sitemaps   leadgen.SitemapService // optional sitemap page discovery
	Vocab      *leadgen.Vocabulary    // defaults to DefaultVocabulary
	Limiter    *DomainLimiter         // optional per-domain rate limiting
	Logger     *slog.Logger           // defaults to slog.Default

	Concurrency int // company workers, default 3
	MaxLeads    int // stop saving after this many leads, 0 for unlimited
	MaxPages    int // people pages fetched per company, default 3

	// Randomized pause added between requests to the same session.
	// Zero means no pause.
	DelayMin time.Duration
	DelayMax time.Duration
}

// run carries the per-session state shared by all workers.
type run struct {
	vocab    *leadgen.Vocabulary
	logger   *slog.Logger
	gate     *leadgen.KeySet
	frontier *Frontier

	companies  atomic.Int64
	pages      atomic.Int64
	saved      atomic.Int64
	duplicates atomic.Int64
	failed     atomic.Int64
}

// Run collects leads from the seed companies. The duplicate gate is seeded
// with the keys of every previously stored lead, so reruns never produce
// the same contact twice. Run returns a partial result together with the
// context's error when canceled mid-session.
func (c *Crawler) Run(ctx context.Context, seeds []Seed) (*Result, error) {
	keys, err := c.Leads.DedupeKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("seeding dedupe gate: %w", err)
	}

	r := &run{
		vocab:    c.Vocab,
		logger:   c.Logger,
		gate:     leadgen.NewKeySet(keys),
		frontier: NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate),
	}
	if r.vocab == nil {
		r.vocab = leadgen.DefaultVocabulary()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, seed := range seeds {
		seed := seed
		g.Go(func() error {
			if gctx.Err() != nil || c.limitReached(r) {
				return nil
			}
			c.processSeed(gctx, seed, r)
			return nil
		})
	}
	_ = g.Wait() // workers record failures instead of returning errors

	result := &Result{
		Companies:  int(r.companies.Load()),
		Pages:      int(r.pages.Load()),
		Leads:      int(r.saved.Load()),
		Duplicates: int(r.duplicates.Load()),
		Failed:     int(r.failed.Load()),
	}
	return result, ctx.Err()
}

// processSeed collects leads from a single company website.
func (c *Crawler) processSeed(ctx context.Context, seed Seed, r *run) {
	u, err := url.Parse(seed.URL)
	if err != nil {
		r.failed.Add(1)
		r.logger.Warn("invalid seed url", "url", seed.URL, "error", err)
		return
	}

	r.frontier.SeenURL(seed.URL)
	if err := c.throttle(ctx, u.Host); err != nil {
		return
	}
	rootHTML, err := c.Fetcher.Fetch(ctx, seed.URL)
	if err != nil {
		r.failed.Add(1)
		r.logger.Warn("company fetch failed", "url", seed.URL, "error", err)
		return
	}
	r.companies.Add(1)

	info := c.Classifier.Classify(rootHTML, seed.URL)
	size := leadgen.EstimateCompanySize(rootHTML)
	r.frontier.SeenContent(rootHTML)

	people := c.scanPages(ctx, u.Host, c.peoplePages(ctx, seed.URL, info), r)
	if len(people) == 0 {
		// No dedicated people page produced anything; the landing page of
		// a small contractor often lists the owner directly.
		people = c.Extractor.ExtractPeople(rootHTML, seed.URL)
	}

	for _, person := range people {
		if c.limitReached(r) {
			return
		}
		c.saveLead(ctx, person, seed, info, size, r)
	}
}

// peoplePages merges classifier and sitemap page discovery, capped at
// MaxPages. Classifier pages come first: they are ordered by how likely
// each category is to list decision makers.
func (c *Crawler) peoplePages(ctx context.Context, siteURL string, info *leadgen.CompanyInfo) []string {
	pages := info.PeoplePages()
	if c.Sitemaps != nil {
		extra, err := c.Sitemaps.DiscoverPeoplePages(ctx, siteURL)
		if err == nil {
			pages = append(pages, extra...)
		}
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	if len(pages) > maxPages {
		pages = pages[:maxPages]
	}
	return pages
}

// scanPages fetches each candidate page and extracts person records from
// it. Pages already visited, or whose content matches an already-scanned
// page, are skipped.
func (c *Crawler) scanPages(ctx context.Context, host string, pages []string, r *run) []leadgen.PersonRecord {
	var people []leadgen.PersonRecord
	for _, page := range pages {
		if ctx.Err() != nil || c.limitReached(r) {
			return people
		}
		if r.frontier.SeenURL(page) {
			continue
		}
		if err := c.throttle(ctx, host); err != nil {
			return people
		}

		html, err := c.Fetcher.Fetch(ctx, page)
		if err != nil {
			r.failed.Add(1)
			r.logger.Warn("page fetch failed", "url", page, "error", err)
			continue
		}
		r.pages.Add(1)
		if r.frontier.SeenContent(html) {
			continue
		}

		people = append(people, c.Extractor.ExtractPeople(html, page)...)
	}
	return people
}

// saveLead enriches, qualifies, and stores a single candidate. Enrichment
// is best-effort: a failed lookup never blocks qualification on its own.
func (c *Crawler) saveLead(ctx context.Context, person leadgen.PersonRecord, seed Seed, info *leadgen.CompanyInfo, size string, r *run) {
	lead := &leadgen.Lead{
		Name:        person.Name,
		Title:       person.Title,
		Company:     info.Name,
		Phone:       person.Phone,
		Email:       person.Email,
		City:        seed.City,
		State:       seed.State,
		CompanySize: size,
		Website:     info.Website,
		SourceURL:   person.Source,
		LeadType:    seed.LeadType,
	}

	// A seed without a location can still yield one when the company name
	// carries it ("Round Rock Builders, TX").
	if lead.City == "" && lead.State == "" {
		if loc := leadgen.ExtractCityState(info.Name); loc.State != "" {
			lead.City = loc.City
			lead.State = loc.State
		}
	}

	if c.Enricher != nil && (lead.Phone == "" || lead.Email == "") {
		enr, err := c.Enricher.EnrichContact(ctx, person.Name, info.Name)
		if err != nil {
			if leadgen.ErrorCode(err) != leadgen.ENOTFOUND {
				r.logger.Debug("enrichment failed", "name", person.Name, "company", info.Name, "error", err)
			}
		} else {
			if lead.Phone == "" {
				lead.Phone = enr.Phone
			}
			if lead.Email == "" {
				lead.Email = enr.Email
			}
			lead.Verified = enr.Verified
		}
	}

	if !lead.Qualified(r.vocab) {
		return
	}
	if !r.gate.Add(lead) {
		r.duplicates.Add(1)
		return
	}
	if err := c.Leads.CreateLead(ctx, lead); err != nil {
		r.failed.Add(1)
		r.logger.Warn("lead save failed", "name", lead.Name, "company", lead.Company, "error", err)
		return
	}
	r.saved.Add(1)
	r.logger.Info("lead saved", "name", lead.Name, "title", lead.Title, "company", lead.Company)
}

// throttle waits for the domain's rate limit, then pauses for the
// configured jitter.
func (c *Crawler) throttle(ctx context.Context, domain string) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, domain); err != nil {
			return err
		}
	}
	return sleepJitter(ctx, c.DelayMin, c.DelayMax)
}

// limitReached reports whether the session has saved MaxLeads leads.
func (c *Crawler) limitReached(r *run) bool {
	return c.MaxLeads > 0 && r.saved.Load() >= int64(c.MaxLeads)
}
