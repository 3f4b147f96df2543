package leadgen

// CompanyInfo describes a company site and the pages on it most likely to
// contain decision-maker contact information.
type CompanyInfo struct {
	Name            string
	Website         string
	LeadershipPages []string
	ContactPages    []string
	AboutPages      []string
}

// PeoplePages returns the candidate pages in scan order: leadership first,
// then contact, then about. The caller caps how many it actually fetches.
func (c *CompanyInfo) PeoplePages() []string {
	pages := make([]string, 0, len(c.LeadershipPages)+len(c.ContactPages)+len(c.AboutPages))
	pages = append(pages, c.LeadershipPages...)
	pages = append(pages, c.ContactPages...)
	pages = append(pages, c.AboutPages...)
	return pages
}

// CompanyClassifier derives CompanyInfo from a company's landing page.
type CompanyClassifier interface {
	Classify(html string, pageURL string) *CompanyInfo
}
