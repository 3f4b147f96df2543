package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ leadgen.LeadService = (*LeadService)(nil)

// LeadService implements leadgen.LeadService using SQLite.
type LeadService struct {
	db *DB
}

// NewLeadService creates a new LeadService.
func NewLeadService(db *DB) *LeadService {
	return &LeadService{db: db}
}

// CreateLead persists a new lead. The dedupe key is derived and stored so
// later runs can seed their duplicate gate without rehydrating every lead.
func (s *LeadService) CreateLead(ctx context.Context, lead *leadgen.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	lead.ID = uuid.New().String()
	lead.CreatedAt = time.Now().UTC()
	if lead.LeadType == "" {
		lead.LeadType = leadgen.LeadTypeConstruction
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO leads (id, name, title, company, phone, email, city, state,
			company_size, website, source_url, verified, lead_type, notes,
			dedupe_key, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, lead.ID, lead.Name, lead.Title, lead.Company, lead.Phone, lead.Email,
		lead.City, lead.State, lead.CompanySize, lead.Website, lead.SourceURL,
		boolToInt(lead.Verified), string(lead.LeadType), lead.Notes,
		leadgen.DedupeKey(lead), lead.CreatedAt.Format(time.RFC3339))

	return err
}

// FindLeads retrieves leads matching the filter, newest first.
func (s *LeadService) FindLeads(ctx context.Context, filter leadgen.LeadFilter) ([]*leadgen.Lead, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, name, title, company, phone, email, city, state,
		company_size, website, source_url, verified, lead_type, notes, created_at
		FROM leads WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Company != nil {
		query.WriteString(" AND company = ?")
		args = append(args, *filter.Company)
	}
	if filter.State != nil {
		query.WriteString(" AND state = ?")
		args = append(args, *filter.State)
	}
	if filter.LeadType != nil {
		query.WriteString(" AND lead_type = ?")
		args = append(args, string(*filter.LeadType))
	}

	query.WriteString(" ORDER BY created_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*leadgen.Lead
	for rows.Next() {
		var lead leadgen.Lead
		var verified int
		var leadType, createdAt string

		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Title, &lead.Company,
			&lead.Phone, &lead.Email, &lead.City, &lead.State, &lead.CompanySize,
			&lead.Website, &lead.SourceURL, &verified, &leadType, &lead.Notes,
			&createdAt); err != nil {
			return nil, err
		}

		lead.Verified = verified != 0
		lead.LeadType = leadgen.LeadType(leadType)
		lead.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		leads = append(leads, &lead)
	}
	return leads, rows.Err()
}

// DedupeKeys returns the stored dedupe key of every lead.
func (s *LeadService) DedupeKeys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT dedupe_key FROM leads WHERE dedupe_key != ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
