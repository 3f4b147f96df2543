package mock

import (
	"context"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

var _ leadgen.LeadService = (*LeadService)(nil)

// LeadService is a mock implementation of leadgen.LeadService.
type LeadService struct {
	CreateLeadFn func(ctx context.Context, lead *leadgen.Lead) error
	FindLeadsFn  func(ctx context.Context, filter leadgen.LeadFilter) ([]*leadgen.Lead, error)
	DedupeKeysFn func(ctx context.Context) ([]string, error)
}

func (s *LeadService) CreateLead(ctx context.Context, lead *leadgen.Lead) error {
	return s.CreateLeadFn(ctx, lead)
}

func (s *LeadService) FindLeads(ctx context.Context, filter leadgen.LeadFilter) ([]*leadgen.Lead, error) {
	return s.FindLeadsFn(ctx, filter)
}

func (s *LeadService) DedupeKeys(ctx context.Context) ([]string, error) {
	return s.DedupeKeysFn(ctx)
}
