package export

import (
	"context"
	"html/template"
	"io"
	"time"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

// Ensure HTMLExporter implements leadgen.Exporter at compile time.
var _ leadgen.Exporter = (*HTMLExporter)(nil)

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Leads</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #f4f4f4; }
</style>
</head>
<body>
<h1>Leads ({{len .Leads}})</h1>
<p>Exported {{.ExportedAt.Format "2006-01-02 15:04"}} UTC</p>
<table>
<tr><th>Name</th><th>Title</th><th>Company</th><th>Phone</th><th>Email</th><th>Location</th><th>Source</th></tr>
{{range .Leads}}<tr>
<td>{{.Name}}</td>
<td>{{.Title}}</td>
<td>{{.Company}}</td>
<td>{{.Phone}}</td>
<td>{{.Email}}</td>
<td>{{.City}}{{if and .City .State}}, {{end}}{{.State}}</td>
<td><a href="{{.SourceURL}}">{{.SourceURL}}</a></td>
</tr>
{{end}}</table>
</body>
</html>
`))

// HTMLExporter writes leads as a standalone HTML report table.
type HTMLExporter struct {
	w   io.Writer
	now func() time.Time
}

// NewHTMLExporter creates an HTMLExporter writing to w.
func NewHTMLExporter(w io.Writer) *HTMLExporter {
	return &HTMLExporter{w: w, now: time.Now}
}

// Export writes the report. Lead fields are HTML-escaped by the template.
func (e *HTMLExporter) Export(ctx context.Context, leads []*leadgen.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return reportTmpl.Execute(e.w, struct {
		ExportedAt time.Time
		Leads      []*leadgen.Lead
	}{e.now().UTC(), leads})
}
