// Package goquery implements person extraction and company-page
// classification using CSS-selector traversal of parsed HTML.
package goquery

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

// Ensure Extractor implements leadgen.PersonExtractor at compile time.
var _ leadgen.PersonExtractor = (*Extractor)(nil)

// Extractor locates decision-maker contact records inside arbitrary HTML.
// It runs a fixed, ordered list of extraction strategies, each tied to a
// page archetype, and uses the first strategy that yields at least one
// candidate. A strategy failure is logged and treated as zero candidates.
type Extractor struct {
	vocab  *leadgen.Vocabulary
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for strategy failures.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor using the given vocabulary.
func NewExtractor(vocab *leadgen.Vocabulary, opts ...Option) *Extractor {
	e := &Extractor{
		vocab:  vocab,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// strategy is one extraction heuristic with a uniform signature.
type strategy struct {
	name string
	fn   func(doc *goquery.Document, sourceURL string) []leadgen.PersonRecord
}

// ExtractPeople parses the page and returns qualified person records.
// Strategies run in fixed order; only the first one producing candidates is
// used. The final filter re-checks every record against the full title gate
// and the phone-or-email rule. An empty slice is the normal outcome for a
// page with no extractable people; errors never propagate.
func (e *Extractor) ExtractPeople(html string, sourceURL string) []leadgen.PersonRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		e.logger.Warn("html parse failed", "url", sourceURL, "error", err)
		return nil
	}

	strategies := []strategy{
		{"leadership", e.extractFromLeadershipPage},
		{"team", e.extractFromTeamPage},
		{"contact", e.extractFromContactPage},
		{"about", e.extractFromAboutPage},
		{"generic", e.extractFromGenericPage},
	}

	var people []leadgen.PersonRecord
	for _, s := range strategies {
		results := e.runStrategy(s, doc, sourceURL)
		if len(results) > 0 {
			people = results
			break
		}
	}

	valid := people[:0:0]
	for _, p := range people {
		if p.Name == "" || p.Title == "" {
			continue
		}
		if !e.vocab.IsValidTitle(p.Title) {
			continue
		}
		if p.Phone == "" && p.Email == "" {
			continue
		}
		valid = append(valid, p)
	}
	return valid
}

// runStrategy executes one strategy, converting a panic into an empty
// result so a malformed fragment never aborts the whole page.
func (e *Extractor) runStrategy(s strategy, doc *goquery.Document, sourceURL string) (results []leadgen.PersonRecord) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("extraction strategy failed",
				"strategy", s.name,
				"url", sourceURL,
				"error", fmt.Sprint(r),
			)
			results = nil
		}
	}()
	return s.fn(doc, sourceURL)
}
