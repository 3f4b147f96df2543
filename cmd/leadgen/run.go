package main

import (
	"fmt"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"github.com/Nadavlistingsync/Agent-Scraper/crawl"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	seeds := make([]crawl.Seed, 0, len(c.URLs))
	for _, u := range c.URLs {
		seeds = append(seeds, crawl.Seed{
			URL:      u,
			City:     c.City,
			State:    c.State,
			LeadType: leadgen.LeadType(c.LeadType),
		})
	}

	result, err := deps.Crawler.Run(deps.Ctx, seeds)
	if err != nil {
		if result != nil {
			printResult(deps, result)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	printResult(deps, result)
	return nil
}

func printResult(deps *Dependencies, r *crawl.Result) {
	fmt.Fprintf(deps.Stdout, "companies: %d  pages: %d  leads: %d  duplicates: %d  failed: %d\n",
		r.Companies, r.Pages, r.Leads, r.Duplicates, r.Failed)
}
