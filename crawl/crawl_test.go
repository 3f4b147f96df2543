package crawl_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"github.com/Nadavlistingsync/Agent-Scraper/crawl"
	"github.com/Nadavlistingsync/Agent-Scraper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leadRecorder is a LeadService that records created leads in memory.
type leadRecorder struct {
	mu    sync.Mutex
	seed  []string
	leads []*leadgen.Lead
}

func (r *leadRecorder) service() *mock.LeadService {
	return &mock.LeadService{
		CreateLeadFn: func(_ context.Context, lead *leadgen.Lead) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.leads = append(r.leads, lead)
			return nil
		},
		FindLeadsFn: func(_ context.Context, _ leadgen.LeadFilter) ([]*leadgen.Lead, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			return r.leads, nil
		},
		DedupeKeysFn: func(_ context.Context) ([]string, error) {
			return r.seed, nil
		},
	}
}

// newCrawler wires a Crawler over canned pages: the map's keys are URLs,
// the values the HTML served for them. People are extracted only from
// URLs listed in peopleByURL.
func newCrawler(rec *leadRecorder, pages map[string]string, peopleByURL map[string][]leadgen.PersonRecord, info *leadgen.CompanyInfo) *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				html, ok := pages[url]
				if !ok {
					return "", leadgen.Errorf(leadgen.ENOTFOUND, "no page for %s", url)
				}
				return html, nil
			},
			CloseFn: func() error { return nil },
		},
		Classifier: &mock.CompanyClassifier{
			ClassifyFn: func(_ string, _ string) *leadgen.CompanyInfo { return info },
		},
		Extractor: &mock.PersonExtractor{
			ExtractPeopleFn: func(_ string, sourceURL string) []leadgen.PersonRecord {
				return peopleByURL[sourceURL]
			},
		},
		Leads:       rec.service(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Concurrency: 1,
	}
}

func TestCrawler_Run(t *testing.T) {
	t.Parallel()

	t.Run("collects qualified leads from people pages", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		c := newCrawler(rec,
			map[string]string{
				"https://acme.com":      "<html>Acme Builders has 500 employees</html>",
				"https://acme.com/team": "<html>team</html>",
			},
			map[string][]leadgen.PersonRecord{
				"https://acme.com/team": {
					{Name: "John Smith", Title: "President", Phone: "+15551234567", Source: "https://acme.com/team"},
				},
			},
			&leadgen.CompanyInfo{
				Name:            "Acme Builders",
				Website:         "https://acme.com",
				LeadershipPages: []string{"https://acme.com/team"},
			},
		)

		result, err := c.Run(context.Background(), []crawl.Seed{
			{URL: "https://acme.com", City: "Dallas", State: "TX", LeadType: leadgen.LeadTypeConstruction},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, result.Companies)
		assert.Equal(t, 1, result.Pages)
		assert.Equal(t, 1, result.Leads)
		require.Len(t, rec.leads, 1)

		lead := rec.leads[0]
		assert.Equal(t, "John Smith", lead.Name)
		assert.Equal(t, "Acme Builders", lead.Company)
		assert.Equal(t, "Dallas", lead.City)
		assert.Equal(t, "TX", lead.State)
		assert.Equal(t, "500 employees", lead.CompanySize)
		assert.Equal(t, "https://acme.com", lead.Website)
		assert.Equal(t, "https://acme.com/team", lead.SourceURL)
		assert.Equal(t, leadgen.LeadTypeConstruction, lead.LeadType)
	})

	t.Run("falls back to the landing page", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		c := newCrawler(rec,
			map[string]string{"https://doe.com": "<html>Doe Roofing</html>"},
			map[string][]leadgen.PersonRecord{
				"https://doe.com": {
					{Name: "Jane Doe", Title: "Owner", Phone: "+15559876543", Source: "https://doe.com"},
				},
			},
			&leadgen.CompanyInfo{Name: "Doe Roofing", Website: "https://doe.com"},
		)

		result, err := c.Run(context.Background(), []crawl.Seed{{URL: "https://doe.com"}})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Leads)
		require.Len(t, rec.leads, 1)
		assert.Equal(t, "Jane Doe", rec.leads[0].Name)
	})

	t.Run("company name supplies a missing location", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		c := newCrawler(rec,
			map[string]string{"https://rrb.com": "<html></html>"},
			map[string][]leadgen.PersonRecord{
				"https://rrb.com": {
					{Name: "John Smith", Title: "President", Phone: "+15551234567", Source: "https://rrb.com"},
				},
			},
			&leadgen.CompanyInfo{Name: "Round Rock Builders, TX"},
		)

		_, err := c.Run(context.Background(), []crawl.Seed{{URL: "https://rrb.com"}})
		require.NoError(t, err)
		require.Len(t, rec.leads, 1)
		assert.Equal(t, "Round Rock Builders", rec.leads[0].City)
		assert.Equal(t, "TX", rec.leads[0].State)
	})

	t.Run("seed location wins over the company name", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		c := newCrawler(rec,
			map[string]string{"https://rrb.com": "<html></html>"},
			map[string][]leadgen.PersonRecord{
				"https://rrb.com": {
					{Name: "John Smith", Title: "President", Phone: "+15551234567", Source: "https://rrb.com"},
				},
			},
			&leadgen.CompanyInfo{Name: "Round Rock Builders, TX"},
		)

		_, err := c.Run(context.Background(), []crawl.Seed{
			{URL: "https://rrb.com", City: "Austin", State: "TX"},
		})
		require.NoError(t, err)
		require.Len(t, rec.leads, 1)
		assert.Equal(t, "Austin", rec.leads[0].City)
	})

	t.Run("rejects candidates without a phone", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		c := newCrawler(rec,
			map[string]string{"https://acme.com": "<html></html>"},
			map[string][]leadgen.PersonRecord{
				"https://acme.com": {
					{Name: "John Smith", Title: "President", Email: "john@acme.com", Source: "https://acme.com"},
				},
			},
			&leadgen.CompanyInfo{Name: "Acme Builders"},
		)

		result, err := c.Run(context.Background(), []crawl.Seed{{URL: "https://acme.com"}})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Leads)
		assert.Empty(t, rec.leads)
	})

	t.Run("enrichment supplies a missing phone", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		c := newCrawler(rec,
			map[string]string{"https://acme.com": "<html></html>"},
			map[string][]leadgen.PersonRecord{
				"https://acme.com": {
					{Name: "John Smith", Title: "President", Email: "john@acme.com", Source: "https://acme.com"},
				},
			},
			&leadgen.CompanyInfo{Name: "Acme Builders"},
		)
		c.Enricher = &mock.Enricher{
			EnrichContactFn: func(_ context.Context, personName, companyName string) (*leadgen.Enrichment, error) {
				assert.Equal(t, "John Smith", personName)
				assert.Equal(t, "Acme Builders", companyName)
				return &leadgen.Enrichment{Phone: "+15551112222", Verified: true}, nil
			},
		}

		result, err := c.Run(context.Background(), []crawl.Seed{{URL: "https://acme.com"}})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Leads)
		require.Len(t, rec.leads, 1)
		assert.Equal(t, "+15551112222", rec.leads[0].Phone)
		assert.Equal(t, "john@acme.com", rec.leads[0].Email)
		assert.True(t, rec.leads[0].Verified)
	})

	t.Run("enrichment failure never blocks a qualified lead", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		c := newCrawler(rec,
			map[string]string{"https://acme.com": "<html></html>"},
			map[string][]leadgen.PersonRecord{
				"https://acme.com": {
					{Name: "John Smith", Title: "President", Phone: "+15551234567", Source: "https://acme.com"},
				},
			},
			&leadgen.CompanyInfo{Name: "Acme Builders"},
		)
		c.Enricher = &mock.Enricher{
			EnrichContactFn: func(_ context.Context, _, _ string) (*leadgen.Enrichment, error) {
				return nil, leadgen.Errorf(leadgen.EUNAVAILABLE, "enrichment service unavailable")
			},
		}

		result, err := c.Run(context.Background(), []crawl.Seed{{URL: "https://acme.com"}})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Leads)
	})

	t.Run("duplicate gate rejects a repeated phone across companies", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		person := leadgen.PersonRecord{Name: "John Smith", Title: "President", Phone: "+15551234567"}
		c := newCrawler(rec,
			map[string]string{
				"https://acme.com": "<html>a</html>",
				"https://doe.com":  "<html>b</html>",
			},
			map[string][]leadgen.PersonRecord{
				"https://acme.com": {person},
				"https://doe.com":  {person},
			},
			&leadgen.CompanyInfo{Name: "Acme Builders"},
		)

		result, err := c.Run(context.Background(), []crawl.Seed{
			{URL: "https://acme.com"},
			{URL: "https://doe.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Leads)
		assert.Equal(t, 1, result.Duplicates)
	})

	t.Run("gate is seeded with stored dedupe keys", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{seed: []string{"15551234567"}}
		c := newCrawler(rec,
			map[string]string{"https://acme.com": "<html></html>"},
			map[string][]leadgen.PersonRecord{
				"https://acme.com": {
					{Name: "John Smith", Title: "President", Phone: "+15551234567", Source: "https://acme.com"},
				},
			},
			&leadgen.CompanyInfo{Name: "Acme Builders"},
		)

		result, err := c.Run(context.Background(), []crawl.Seed{{URL: "https://acme.com"}})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Leads)
		assert.Equal(t, 1, result.Duplicates)
	})

	t.Run("stops at the lead limit", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		c := newCrawler(rec,
			map[string]string{"https://acme.com": "<html></html>"},
			map[string][]leadgen.PersonRecord{
				"https://acme.com": {
					{Name: "John Smith", Title: "President", Phone: "+15551230001", Source: "https://acme.com"},
					{Name: "Jane Doe", Title: "Owner", Phone: "+15551230002", Source: "https://acme.com"},
					{Name: "Mary Major", Title: "CEO", Phone: "+15551230003", Source: "https://acme.com"},
				},
			},
			&leadgen.CompanyInfo{Name: "Acme Builders"},
		)
		c.MaxLeads = 2

		result, err := c.Run(context.Background(), []crawl.Seed{{URL: "https://acme.com"}})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Leads)
	})

	t.Run("fetch failure is counted and the session continues", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		c := newCrawler(rec,
			map[string]string{"https://doe.com": "<html></html>"},
			map[string][]leadgen.PersonRecord{
				"https://doe.com": {
					{Name: "Jane Doe", Title: "Owner", Phone: "+15559876543", Source: "https://doe.com"},
				},
			},
			&leadgen.CompanyInfo{Name: "Doe Roofing"},
		)

		result, err := c.Run(context.Background(), []crawl.Seed{
			{URL: "https://down.example.com"},
			{URL: "https://doe.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 1, result.Leads)
	})

	t.Run("identical page content is scanned once", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		same := "<html>the one team page</html>"
		c := newCrawler(rec,
			map[string]string{
				"https://acme.com":       "<html>landing</html>",
				"https://acme.com/team":  same,
				"https://acme.com/about": same,
			},
			map[string][]leadgen.PersonRecord{
				"https://acme.com/team": {
					{Name: "John Smith", Title: "President", Phone: "+15551234567", Source: "https://acme.com/team"},
				},
				"https://acme.com/about": {
					{Name: "John Smith", Title: "President", Phone: "+15551234567", Source: "https://acme.com/about"},
				},
			},
			&leadgen.CompanyInfo{
				Name:            "Acme Builders",
				LeadershipPages: []string{"https://acme.com/team"},
				AboutPages:      []string{"https://acme.com/about"},
			},
		)

		result, err := c.Run(context.Background(), []crawl.Seed{{URL: "https://acme.com"}})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Pages)
		assert.Equal(t, 1, result.Leads)
		assert.Equal(t, 0, result.Duplicates)
	})

	t.Run("sitemap pages extend classifier discovery", func(t *testing.T) {
		t.Parallel()

		rec := &leadRecorder{}
		c := newCrawler(rec,
			map[string]string{
				"https://acme.com":       "<html>landing</html>",
				"https://acme.com/staff": "<html>staff</html>",
			},
			map[string][]leadgen.PersonRecord{
				"https://acme.com/staff": {
					{Name: "John Smith", Title: "President", Phone: "+15551234567", Source: "https://acme.com/staff"},
				},
			},
			&leadgen.CompanyInfo{Name: "Acme Builders"},
		)
		c.Sitemaps = &mock.SitemapService{
			DiscoverPeoplePagesFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{"https://acme.com/staff"}, nil
			},
		}

		result, err := c.Run(context.Background(), []crawl.Seed{{URL: "https://acme.com"}})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Leads)
		assert.Equal(t, "https://acme.com/staff", rec.leads[0].SourceURL)
	})
}
