package mock

import leadgen "github.com/Nadavlistingsync/Agent-Scraper"

var _ leadgen.CompanyClassifier = (*CompanyClassifier)(nil)

// CompanyClassifier is a mock implementation of leadgen.CompanyClassifier.
type CompanyClassifier struct {
	ClassifyFn func(html string, pageURL string) *leadgen.CompanyInfo
}

func (c *CompanyClassifier) Classify(html string, pageURL string) *leadgen.CompanyInfo {
	return c.ClassifyFn(html, pageURL)
}
