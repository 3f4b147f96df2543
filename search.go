package leadgen

import "fmt"

// SearchResult is one entry from an external search-results page.
type SearchResult struct {
	URL   string
	Title string
}

// SearchQueries generates the search phrases used to discover company
// sites: every company type crossed with every decision-maker title, plus
// contact/about variants and state-specific forms. Order is deterministic
// and duplicates are removed.
func (v *Vocabulary) SearchQueries(states []string) []string {
	seen := make(map[string]bool)
	var queries []string
	add := func(q string) {
		if !seen[q] {
			seen[q] = true
			queries = append(queries, q)
		}
	}

	for _, companyType := range v.CompanyTypes {
		for _, title := range v.DecisionMakerTitles {
			add(fmt.Sprintf("%q %q phone site:about OR team OR leadership", companyType, title))
			add(fmt.Sprintf("%q %q contact", companyType, title))
			add(fmt.Sprintf("%q %q \"about us\"", companyType, title))

			for _, state := range states {
				add(fmt.Sprintf("%q %q %q phone", companyType, title, state))
				add(fmt.Sprintf("%q %q contact information", companyType, state))
			}
		}
	}

	return queries
}
