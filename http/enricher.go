package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

// Ensure Enricher implements leadgen.Enricher at compile time.
var _ leadgen.Enricher = (*Enricher)(nil)

// Enricher resolves richer contact data from an Apollo-style people-match
// API. The API returns several candidate people for a (name, company) pair;
// the best one is picked by name similarity and filtered by the
// decision-maker vocabulary.
type Enricher struct {
	client  *http.Client
	baseURL string
	apiKey  string
	vocab   *leadgen.Vocabulary
}

// NewEnricher creates an Enricher for the people-match API at baseURL.
// If client is nil, http.DefaultClient is used.
func NewEnricher(client *http.Client, baseURL, apiKey string, vocab *leadgen.Vocabulary) *Enricher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Enricher{client: client, baseURL: baseURL, apiKey: apiKey, vocab: vocab}
}

type matchRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization_name"`
}

type matchResponse struct {
	People []struct {
		FirstName     string `json:"first_name"`
		LastName      string `json:"last_name"`
		Title         string `json:"title"`
		PhoneNumber   string `json:"phone_number"`
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
	} `json:"people"`
}

// EnrichContact looks up richer phone/email data for a person at a company.
// Returns ENOTFOUND when the API yields no confident decision-maker match;
// callers treat that as "no enrichment", not as an error condition.
func (e *Enricher) EnrichContact(ctx context.Context, personName, companyName string) (*leadgen.Enrichment, error) {
	body, err := json.Marshal(matchRequest{Name: personName, Organization: companyName})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/people/match", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, leadgen.Errorf(leadgen.EUNAVAILABLE, "enrichment request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, leadgen.Errorf(leadgen.EUNAVAILABLE, "enrichment API returned HTTP %d", resp.StatusCode)
	}

	var mr matchResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("decoding enrichment response: %w", err)
	}

	// Keep only decision-maker candidates before similarity scoring.
	// The generic-title exclusion is deliberately not applied here.
	var candidates []leadgen.EnrichmentCandidate
	for _, p := range mr.People {
		if !e.vocab.MatchesDecisionMaker(p.Title) {
			continue
		}
		candidates = append(candidates, leadgen.EnrichmentCandidate{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Title:     p.Title,
			Phone:     leadgen.NormalizePhone(p.PhoneNumber),
			Email:     leadgen.NormalizeEmail(p.Email),
			Verified:  p.EmailVerified,
		})
	}

	best := leadgen.FindBestMatch(personName, candidates)
	if best == nil {
		return nil, leadgen.Errorf(leadgen.ENOTFOUND, "no confident match for %q at %q", personName, companyName)
	}

	return &leadgen.Enrichment{
		Phone:    best.Phone,
		Email:    best.Email,
		Verified: best.Verified,
	}, nil
}
