package main

import (
	"fmt"
	"io"
	"os"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"github.com/Nadavlistingsync/Agent-Scraper/export"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	leads, err := deps.Leads.FindLeads(deps.Ctx, leadFilter(c.Company, c.State, c.LeadType, 0))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	var w io.Writer = deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("failed to create %q: %w", c.Out, err)
		}
		defer f.Close()
		w = f
	}

	var exporter leadgen.Exporter
	switch c.Format {
	case "json":
		exporter = export.NewJSONExporter(w)
	case "html":
		exporter = export.NewHTMLExporter(w)
	default:
		exporter = export.NewCSVExporter(w)
	}

	if err := exporter.Export(deps.Ctx, leads); err != nil {
		return err
	}

	if c.Out != "" {
		fmt.Fprintf(deps.Stderr, "exported %d leads to %s\n", len(leads), c.Out)
	}
	return nil
}
