package export

import (
	"context"
	"encoding/json"
	"io"
	"time"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

// Ensure JSONExporter implements leadgen.Exporter at compile time.
var _ leadgen.Exporter = (*JSONExporter)(nil)

// jsonDocument is the exported envelope: the lead set plus when and how
// much was exported.
type jsonDocument struct {
	ExportedAt time.Time       `json:"exportedAt"`
	Count      int             `json:"count"`
	Leads      []*leadgen.Lead `json:"leads"`
}

// JSONExporter writes leads as an indented JSON document with export
// metadata.
type JSONExporter struct {
	w   io.Writer
	now func() time.Time
}

// NewJSONExporter creates a JSONExporter writing to w.
func NewJSONExporter(w io.Writer) *JSONExporter {
	return &JSONExporter{w: w, now: time.Now}
}

// Export writes all leads. An empty lead set is written as an empty
// array, not null.
func (e *JSONExporter) Export(ctx context.Context, leads []*leadgen.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if leads == nil {
		leads = []*leadgen.Lead{}
	}

	enc := json.NewEncoder(e.w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonDocument{
		ExportedAt: e.now().UTC(),
		Count:      len(leads),
		Leads:      leads,
	})
}
