package main

import (
	"fmt"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	leads, err := deps.Leads.FindLeads(deps.Ctx, leadFilter(c.Company, c.State, c.LeadType, c.Limit))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	if len(leads) == 0 {
		fmt.Fprintln(deps.Stdout, "No leads found. Use 'leadgen run' to collect some.")
		return nil
	}

	for _, l := range leads {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n", l.Name, l.Title, l.Company, l.Phone, l.State)
	}

	return nil
}

// leadFilter builds a LeadFilter from optional CLI flags.
func leadFilter(company, state, leadType string, limit int) leadgen.LeadFilter {
	filter := leadgen.LeadFilter{Limit: limit}
	if company != "" {
		filter.Company = &company
	}
	if state != "" {
		filter.State = &state
	}
	if leadType != "" {
		lt := leadgen.LeadType(leadType)
		filter.LeadType = &lt
	}
	return filter
}
