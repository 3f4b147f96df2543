package mock

import leadgen "github.com/Nadavlistingsync/Agent-Scraper"

var _ leadgen.PersonExtractor = (*PersonExtractor)(nil)

// PersonExtractor is a mock implementation of leadgen.PersonExtractor.
type PersonExtractor struct {
	ExtractPeopleFn func(html string, sourceURL string) []leadgen.PersonRecord
}

func (e *PersonExtractor) ExtractPeople(html string, sourceURL string) []leadgen.PersonRecord {
	return e.ExtractPeopleFn(html, sourceURL)
}
