package leadgen

import (
	"context"
	"time"
)

// LeadType classifies the market segment a lead was collected for.
type LeadType string

// Lead type constants.
const (
	LeadTypeConstruction LeadType = "construction"
	LeadTypeRealEstate   LeadType = "real-estate"
)

// Lead is a qualified, exportable record combining a person and the company
// they belong to. A lead is only considered qualified if it carries a
// non-empty phone number (email alone is insufficient) and its title passes
// the title vocabulary gate. Once exported a lead is read-only historical
// data used for cross-run deduplication.
type Lead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	CompanySize string    `json:"companySize"`
	Website     string    `json:"website"`
	SourceURL   string    `json:"sourceUrl"`
	Verified    bool      `json:"verified"`
	LeadType    LeadType  `json:"leadType"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the lead contains invalid fields.
func (l *Lead) Validate() error {
	if l.Name == "" {
		return Errorf(EINVALID, "lead name required")
	}
	if l.Company == "" {
		return Errorf(EINVALID, "lead company required")
	}
	if l.Phone == "" && l.Email == "" {
		return Errorf(EINVALID, "lead requires a phone or email")
	}
	return nil
}

// Qualified reports whether the lead meets the acceptance rule applied
// after enrichment: a passing title and a phone number. Email alone never
// qualifies a lead.
func (l *Lead) Qualified(vocab *Vocabulary) bool {
	return l.Phone != "" && vocab.IsValidTitle(l.Title)
}

// LeadService represents a service for managing collected leads.
type LeadService interface {
	// CreateLead persists a new lead.
	CreateLead(ctx context.Context, lead *Lead) error

	// FindLeads retrieves leads matching the filter.
	FindLeads(ctx context.Context, filter LeadFilter) ([]*Lead, error)

	// DedupeKeys returns the dedupe keys of every stored lead.
	// Used to seed cross-run deduplication.
	DedupeKeys(ctx context.Context) ([]string, error)
}

// LeadFilter represents a filter for FindLeads.
type LeadFilter struct {
	ID       *string   `json:"id"`
	Company  *string   `json:"company"`
	State    *string   `json:"state"`
	LeadType *LeadType `json:"leadType"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Exporter writes a set of leads to an output format.
type Exporter interface {
	Export(ctx context.Context, leads []*Lead) error
}
