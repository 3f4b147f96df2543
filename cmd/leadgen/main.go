package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"github.com/Nadavlistingsync/Agent-Scraper/crawl"
	"github.com/Nadavlistingsync/Agent-Scraper/goquery"
	lghttp "github.com/Nadavlistingsync/Agent-Scraper/http"
	"github.com/Nadavlistingsync/Agent-Scraper/rod"
	lgslog "github.com/Nadavlistingsync/Agent-Scraper/slog"
	"github.com/Nadavlistingsync/Agent-Scraper/sqlite"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the lead store.
	DB *sqlite.DB

	// Service handle for end-to-end testing.
	LeadService leadgen.LeadService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("leadgen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'leadgen --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LEADGEN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.LeadService = sqlite.NewLeadService(m.DB)
	deps.DB = m.DB
	deps.Leads = m.LeadService
	deps.Vocab = leadgen.DefaultVocabulary()

	if cmd == "run" {
		level := slog.LevelInfo
		if cli.Run.Verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		var fetcher leadgen.Fetcher
		if cli.Run.Static {
			fetcher = lghttp.NewFetcher(
				lghttp.WithTimeout(30*time.Second),
				lghttp.WithUserAgents(deps.Vocab.UserAgents),
			)
		} else {
			f, err := rod.NewFetcher(rod.WithUserAgents(deps.Vocab.UserAgents))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --static")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		}
		fetcher = lgslog.NewLoggingFetcher(fetcher, logger)
		defer fetcher.Close()

		var extractor leadgen.PersonExtractor = goquery.NewExtractor(deps.Vocab, goquery.WithLogger(logger))
		extractor = lgslog.NewLoggingExtractor(extractor, logger)

		deps.Crawler = &crawl.Crawler{
			Fetcher:     fetcher,
			Classifier:  goquery.NewClassifier(),
			Extractor:   extractor,
			Leads:       m.LeadService,
			Enricher:    enricherFromEnv(deps.Vocab),
			Sitemaps:    lghttp.NewSitemapService(nil),
			Vocab:       deps.Vocab,
			Limiter:     crawl.NewDomainLimiter(1.0),
			Logger:      logger,
			Concurrency: cli.Run.Concurrency,
			MaxLeads:    cli.Run.Limit,
			MaxPages:    cli.Run.MaxPages,
			DelayMin:    time.Second,
			DelayMax:    3 * time.Second,
		}
	}

	return kongCtx.Run(deps)
}

// enricherFromEnv wires the contact enrichment client when credentials are
// configured. Without them enrichment is simply skipped.
func enricherFromEnv(vocab *leadgen.Vocabulary) leadgen.Enricher {
	baseURL := os.Getenv("LEADGEN_ENRICH_URL")
	if baseURL == "" {
		return nil
	}
	return lghttp.NewEnricher(nil, baseURL, os.Getenv("LEADGEN_ENRICH_KEY"), vocab)
}

func defaultDBPath() string {
	if path := os.Getenv("LEADGEN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "leadgen.db"
	}
	dir := filepath.Join(home, ".leadgen")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "leadgen.db")
}
