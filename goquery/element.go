package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
)

// Name-shape patterns: "First Last", "First M. Last", "First Middle Last".
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`),
	regexp.MustCompile(`^[A-Z][a-z]+ [A-Z]\. [A-Z][a-z]+$`),
	regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+ [A-Z][a-z]+$`),
}

// Loose name presence check used by the person-info signal.
var looseNameRe = regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`)

// Nested selectors searched for a name and a title, in preference order.
const (
	nameSelector  = "h1, h2, h3, h4, .name, .person-name, .full-name, [class*=name], strong, b"
	titleSelector = ".title, .position, .role, .job-title, [class*=title], [class*=position], em, i"
)

// personFromElement extracts a candidate from one structural element.
// Rejects the element when name or title is missing, or when neither a
// phone nor an email was obtained.
func (e *Extractor) personFromElement(sel *goquery.Selection, sourceURL string) (leadgen.PersonRecord, bool) {
	text := sel.Text()

	name := e.extractName(sel, text)
	if name == "" {
		return leadgen.PersonRecord{}, false
	}

	title := e.extractTitle(sel, text)
	if title == "" || !e.vocab.IsValidTitle(title) {
		return leadgen.PersonRecord{}, false
	}

	phone := e.extractPhone(sel, text)
	email := e.extractEmail(sel, text)
	if phone == "" && email == "" {
		return leadgen.PersonRecord{}, false
	}

	return leadgen.PersonRecord{
		Name:   strings.TrimSpace(name),
		Title:  strings.TrimSpace(title),
		Phone:  phone,
		Email:  email,
		Source: sourceURL,
	}, true
}

// extractName searches nested heading and name-labeled elements for the
// first name-shaped text, falling back to a line scan of the element text.
func (e *Extractor) extractName(sel *goquery.Selection, text string) string {
	found := ""
	sel.Find(nameSelector).EachWithBreak(func(_ int, nameSel *goquery.Selection) bool {
		candidate := strings.TrimSpace(nameSel.Text())
		if looksLikeName(candidate) {
			found = candidate
			return false
		}
		return true
	})
	if found != "" {
		return found
	}

	for _, line := range nonEmptyLines(text) {
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

// extractTitle searches nested title-labeled and emphasis elements for the
// first decision-maker vocabulary match, falling back to a line scan.
// The generic-title exclusion is not applied here; the full gate runs in
// the page-level final filter.
func (e *Extractor) extractTitle(sel *goquery.Selection, text string) string {
	found := ""
	sel.Find(titleSelector).EachWithBreak(func(_ int, titleSel *goquery.Selection) bool {
		candidate := strings.TrimSpace(titleSel.Text())
		if e.vocab.MatchesDecisionMaker(candidate) {
			found = candidate
			return false
		}
		return true
	})
	if found != "" {
		return found
	}

	for _, line := range nonEmptyLines(text) {
		if e.vocab.MatchesDecisionMaker(line) {
			return line
		}
	}
	return ""
}

// extractPhone prefers an explicit tel: link target over the first phone
// match in the element text. Returns "" when normalization fails.
func (e *Extractor) extractPhone(sel *goquery.Selection, text string) string {
	if href, ok := sel.Find(`a[href^="tel:"]`).First().Attr("href"); ok {
		if phone := leadgen.NormalizePhone(strings.TrimPrefix(href, "tel:")); phone != "" {
			return phone
		}
	}
	if phones := leadgen.ExtractPhonesFromText(text); len(phones) > 0 {
		return leadgen.NormalizePhone(phones[0])
	}
	return ""
}

// extractEmail prefers an explicit mailto: link target over the first email
// match in the element text. Returns "" when normalization fails.
func (e *Extractor) extractEmail(sel *goquery.Selection, text string) string {
	if href, ok := sel.Find(`a[href^="mailto:"]`).First().Attr("href"); ok {
		if email := leadgen.NormalizeEmail(strings.TrimPrefix(href, "mailto:")); email != "" {
			return email
		}
	}
	if emails := leadgen.ExtractEmailsFromText(text); len(emails) > 0 {
		return leadgen.NormalizeEmail(emails[0])
	}
	return ""
}

// personFromText extracts a candidate from unstructured text line by line:
// first name-shaped line, first vocabulary-matching line, then the first
// phone and email on remaining lines.
func (e *Extractor) personFromText(text string, sourceURL string) (leadgen.PersonRecord, bool) {
	var name, title, phone, email string

	for _, line := range nonEmptyLines(text) {
		switch {
		case name == "" && looksLikeName(line):
			name = line
		case title == "" && e.vocab.MatchesDecisionMaker(line):
			title = line
		case phone == "":
			if phones := leadgen.ExtractPhonesFromText(line); len(phones) > 0 {
				phone = leadgen.NormalizePhone(phones[0])
			}
		case email == "":
			if emails := leadgen.ExtractEmailsFromText(line); len(emails) > 0 {
				email = leadgen.NormalizeEmail(emails[0])
			}
		}
	}

	if name == "" || title == "" || !e.vocab.IsValidTitle(title) {
		return leadgen.PersonRecord{}, false
	}
	if phone == "" && email == "" {
		return leadgen.PersonRecord{}, false
	}

	return leadgen.PersonRecord{
		Name:   name,
		Title:  title,
		Phone:  phone,
		Email:  email,
		Source: sourceURL,
	}, true
}

// looksLikePersonInfo is the heuristic signal for the generic and
// structured-contact scans: a name-shaped substring plus at least one of a
// decision-maker title, phone, or email.
func (e *Extractor) looksLikePersonInfo(text string) bool {
	if len(text) < 10 {
		return false
	}
	if !looseNameRe.MatchString(text) {
		return false
	}
	return e.vocab.MatchesDecisionMaker(text) ||
		leadgen.PhoneRe.MatchString(text) ||
		leadgen.EmailRe.MatchString(text)
}

// looksLikeName reports whether text has the shape of a capitalized
// two-or-three word personal name between 2 and 50 characters.
func looksLikeName(text string) bool {
	if len(text) < 2 || len(text) > 50 {
		return false
	}
	for _, re := range namePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// nonEmptyLines splits text on newlines, trimming each line and dropping
// empty ones.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
