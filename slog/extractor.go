// Package slog provides logging decorators for leadgen services.
package slog

import (
	"log/slog"
	"time"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

// Ensure LoggingExtractor implements leadgen.PersonExtractor.
var _ leadgen.PersonExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PersonExtractor with per-page extraction logging.
type LoggingExtractor struct {
	next   leadgen.PersonExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next leadgen.PersonExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractPeople delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractPeople(html string, sourceURL string) []leadgen.PersonRecord {
	begin := time.Now()
	people := e.next.ExtractPeople(html, sourceURL)
	e.logger.Info("people extraction",
		"url", sourceURL,
		"people", len(people),
		"duration", time.Since(begin),
	)
	return people
}
