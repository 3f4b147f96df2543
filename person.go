package leadgen

// PersonRecord is a candidate contact extracted from a single page.
// It is immutable once created; the orchestration layer wraps it into a
// Lead together with company metadata.
type PersonRecord struct {
	Name   string
	Title  string
	Phone  string // E.164, empty if not found
	Email  string // lowercased, empty if not found
	Source string // URL of the page the record came from
}

// PersonExtractor produces qualified person records from a raw HTML page.
// Implementations parse the document fresh on every call and must never
// return an error for malformed or empty pages - an empty slice is the
// normal outcome for a page with no extractable people.
type PersonExtractor interface {
	ExtractPeople(html string, sourceURL string) []PersonRecord
}
