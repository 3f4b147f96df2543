package goquery

import (
	"github.com/PuerkitoBio/goquery"
	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

// Selector lists per page archetype. Each strategy scans its selectors in
// order and extracts a candidate from every matching element.
var (
	leadershipSelectors = []string{
		".leadership-item",
		".team-member",
		".executive",
		".management",
		".person",
		".staff-member",
		"[class*=leadership]",
		"[class*=team]",
		"[class*=executive]",
	}

	teamSelectors = []string{
		".team-card",
		".member-card",
		".person-card",
		".staff-card",
		"[class*=team]",
		"[class*=member]",
	}

	contactSelectors = []string{
		".contact-person",
		".contact-info",
		".staff-contact",
		".office-contact",
		"[class*=contact]",
	}

	aboutSelectors = []string{
		".about-content",
		".company-info",
		".history",
		".mission",
		"[class*=about]",
	}

	// Structured contact blocks scanned by the contact strategy's
	// secondary pass.
	structuredContactSelector = ".contact, .office, .location, [class*=contact]"

	// Block-level elements scanned by the generic fallback.
	genericSelectors = []string{"div", "section", "article", "li"}
)

func (e *Extractor) extractFromLeadershipPage(doc *goquery.Document, sourceURL string) []leadgen.PersonRecord {
	return e.extractBySelectors(doc, leadershipSelectors, sourceURL)
}

func (e *Extractor) extractFromTeamPage(doc *goquery.Document, sourceURL string) []leadgen.PersonRecord {
	return e.extractBySelectors(doc, teamSelectors, sourceURL)
}

// extractFromContactPage combines selector-based extraction with a
// structured-contact text scan. Both run unconditionally; their union is
// the strategy's output.
func (e *Extractor) extractFromContactPage(doc *goquery.Document, sourceURL string) []leadgen.PersonRecord {
	people := e.extractBySelectors(doc, contactSelectors, sourceURL)
	people = append(people, e.extractStructuredContactData(doc, sourceURL)...)
	return people
}

func (e *Extractor) extractFromAboutPage(doc *goquery.Document, sourceURL string) []leadgen.PersonRecord {
	return e.extractBySelectors(doc, aboutSelectors, sourceURL)
}

// extractFromGenericPage is the last-resort whole-page scan. Every
// block-level element whose text looks like person info goes through
// line-by-line extraction.
func (e *Extractor) extractFromGenericPage(doc *goquery.Document, sourceURL string) []leadgen.PersonRecord {
	var people []leadgen.PersonRecord
	for _, selector := range genericSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			text := sel.Text()
			if !e.looksLikePersonInfo(text) {
				return
			}
			if p, ok := e.personFromText(text, sourceURL); ok {
				people = append(people, p)
			}
		})
	}
	return people
}

// extractBySelectors runs per-element extraction over every selector in
// order, accumulating candidates in document order within each selector.
func (e *Extractor) extractBySelectors(doc *goquery.Document, selectors []string, sourceURL string) []leadgen.PersonRecord {
	var people []leadgen.PersonRecord
	for _, selector := range selectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if p, ok := e.personFromElement(sel, sourceURL); ok {
				people = append(people, p)
			}
		})
	}
	return people
}

// extractStructuredContactData scans contact-like blocks for free-text
// person info.
func (e *Extractor) extractStructuredContactData(doc *goquery.Document, sourceURL string) []leadgen.PersonRecord {
	var people []leadgen.PersonRecord
	doc.Find(structuredContactSelector).Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		if !e.looksLikePersonInfo(text) {
			return
		}
		if p, ok := e.personFromText(text, sourceURL); ok {
			people = append(people, p)
		}
	})
	return people
}
