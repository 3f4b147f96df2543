package main

import (
	"context"
	"io"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"github.com/Nadavlistingsync/Agent-Scraper/crawl"
	"github.com/Nadavlistingsync/Agent-Scraper/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Leads   leadgen.LeadService
	Vocab   *leadgen.Vocabulary
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run     RunCmd     `cmd:"" help:"Collect leads from company websites"`
	List    ListCmd    `cmd:"" help:"List stored leads"`
	Export  ExportCmd  `cmd:"" help:"Export stored leads to CSV or JSON"`
	Queries QueriesCmd `cmd:"" help:"Print web search queries for target states"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	URLs        []string `arg:"" help:"Company website URLs"`
	City        string   `help:"City the companies were searched in"`
	State       string   `help:"State the companies were searched in"`
	LeadType    string   `default:"construction" enum:"construction,real-estate" help:"Market segment"`
	Limit       int      `short:"n" default:"25" help:"Stop after this many leads"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent company limit"`
	MaxPages    int      `default:"3" help:"People pages fetched per company"`
	Static      bool     `help:"Use plain HTTP instead of a headless browser"`
	Verbose     bool     `short:"v" help:"Log page-level detail"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Company  string `help:"Filter by company name"`
	State    string `help:"Filter by state"`
	LeadType string `help:"Filter by lead type"`
	Limit    int    `short:"n" help:"Maximum leads to show"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format   string `default:"csv" enum:"csv,json,html" help:"Output format"`
	Out      string `short:"o" help:"Output path (default stdout)"`
	Company  string `help:"Filter by company name"`
	State    string `help:"Filter by state"`
	LeadType string `help:"Filter by lead type"`
}

// QueriesCmd is the "queries" subcommand.
type QueriesCmd struct {
	States []string `arg:"" help:"Target state codes"`
}
