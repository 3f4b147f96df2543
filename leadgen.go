// Package leadgen extracts decision-maker contact records for construction
// and real-estate companies. It crawls company websites, locates person
// blocks in arbitrary HTML, normalizes phone/email/location tokens, filters
// titles against curated vocabularies, deduplicates against previously
// collected leads, and exports the results.
//
// This package contains domain types, interfaces, and the pure extraction
// core following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// goquery/, sqlite/, rod/).
package leadgen
