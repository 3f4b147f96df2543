package mock

import (
	"context"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

var _ leadgen.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of leadgen.Enricher.
type Enricher struct {
	EnrichContactFn func(ctx context.Context, personName, companyName string) (*leadgen.Enrichment, error)
}

func (e *Enricher) EnrichContact(ctx context.Context, personName, companyName string) (*leadgen.Enrichment, error) {
	return e.EnrichContactFn(ctx, personName, companyName)
}
