// Package export writes collected leads to interchange formats.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

// Ensure CSVExporter implements leadgen.Exporter at compile time.
var _ leadgen.Exporter = (*CSVExporter)(nil)

// csvHeader is the column order of exported files. Kept stable so sheets
// built on previous exports keep lining up.
var csvHeader = []string{
	"Name", "Title", "Company", "Phone", "Email", "City", "State",
	"Company Size", "Website", "Source URL", "Verified", "Lead Type",
	"Notes", "Created At",
}

// CSVExporter writes leads as CSV with a header row.
type CSVExporter struct {
	w io.Writer
}

// NewCSVExporter creates a CSVExporter writing to w.
func NewCSVExporter(w io.Writer) *CSVExporter {
	return &CSVExporter{w: w}
}

// Export writes all leads. The header row is written even when there are
// no leads.
func (e *CSVExporter) Export(ctx context.Context, leads []*leadgen.Lead) error {
	w := csv.NewWriter(e.w)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, lead := range leads {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := []string{
			lead.Name, lead.Title, lead.Company, lead.Phone, lead.Email,
			lead.City, lead.State, lead.CompanySize, lead.Website,
			lead.SourceURL, strconv.FormatBool(lead.Verified),
			string(lead.LeadType), lead.Notes,
			lead.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing lead %s: %w", lead.ID, err)
		}
	}

	w.Flush()
	return w.Error()
}
