package leadgen

import (
	"context"
	"strings"
)

// EnrichmentCandidate is one person returned by an enrichment API lookup.
type EnrichmentCandidate struct {
	FirstName string
	LastName  string
	Title     string
	Phone     string
	Email     string
	Verified  bool
}

// Name joins the candidate's given and family names for similarity scoring.
func (c *EnrichmentCandidate) Name() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Enrichment holds the richer contact data resolved for a person.
type Enrichment struct {
	Phone    string
	Email    string
	Verified bool
}

// Enricher resolves richer phone/email data for a person at a company.
// Enrichment is best-effort: implementations return ENOTFOUND when no
// confident match exists, and callers must never let an enrichment failure
// block lead qualification on its own.
type Enricher interface {
	EnrichContact(ctx context.Context, personName, companyName string) (*Enrichment, error)
}
