package leadgen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	phoneCleanRe = regexp.MustCompile(`[^\d+()\s\-.]`)
	digitsOnlyRe = regexp.MustCompile(`\D`)
	cityStateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^([^,]+),\s*([A-Z]{2})$`),      // "City, ST"
		regexp.MustCompile(`(?i)^([^,]+),\s*([A-Za-z\s]+)$`),   // "City, State"
		regexp.MustCompile(`(?i)^([A-Za-z\s]+)\s+([A-Z]{2})$`), // "City ST"
	}
	trailingStateRe = regexp.MustCompile(`\b([A-Z]{2})\b$`)
	companySuffixRe = regexp.MustCompile(`(?i)\b(inc|llc|ltd|corp|corporation|company|co)\b\.?$`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// NormalizePhone canonicalizes a raw phone string to E.164. Numbers are
// parsed with the US as the default region, so explicit country codes
// (+44...) are preserved while bare ten-digit numbers become +1XXXXXXXXXX.
// A number that parses but fails validation (bad area code or exchange) is
// rejected; only input the parser cannot handle at all falls back to the
// digit grammar. Returns "" when nothing valid can be recovered.
func NormalizePhone(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := phoneCleanRe.ReplaceAllString(raw, "")

	num, err := phonenumbers.Parse(cleaned, "US")
	if err == nil {
		if phonenumbers.IsValidNumber(num) {
			return phonenumbers.Format(num, phonenumbers.E164)
		}
		return ""
	}

	// Unparseable input: recover a bare US number from the digit grammar.
	m := PhoneRe.FindString(cleaned)
	if m == "" {
		return ""
	}
	digits := digitsOnlyRe.ReplaceAllString(m, "")
	switch {
	case len(digits) == 10:
		return "+1" + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits
	}
	return ""
}

// NormalizeEmail returns the first email found in raw, lowercased and
// trimmed, or "" if raw contains no email.
func NormalizeEmail(raw string) string {
	if raw == "" {
		return ""
	}
	m := EmailRe.FindString(raw)
	if m == "" {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(m))
}

// ExtractPhonesFromText returns every phone match in input order, trimmed.
func ExtractPhonesFromText(text string) []string {
	matches := PhoneRe.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSpace(m))
	}
	return out
}

// ExtractEmailsFromText returns every email match in input order,
// lowercased and trimmed.
func ExtractEmailsFromText(text string) []string {
	matches := EmailRe.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.ToLower(strings.TrimSpace(m)))
	}
	return out
}

// CityState is a parsed location.
type CityState struct {
	City  string
	State string
}

// ExtractCityState splits a free-text location into city and state.
// Tries "City, ST", "City, State-name", then "City ST"; falls back to
// pulling a trailing two-letter state code. On total failure the whole
// input is returned as the city with an empty state.
func ExtractCityState(location string) CityState {
	if location == "" {
		return CityState{}
	}

	for _, re := range cityStateRes {
		if m := re.FindStringSubmatch(location); m != nil {
			return CityState{
				City:  strings.TrimSpace(m[1]),
				State: strings.ToUpper(strings.TrimSpace(m[2])),
			}
		}
	}

	if m := trailingStateRe.FindStringSubmatch(location); m != nil {
		city := trailingStateRe.ReplaceAllString(location, "")
		city = strings.TrimSuffix(strings.TrimSpace(city), ",")
		return CityState{
			City:  strings.TrimSpace(city),
			State: m[1],
		}
	}

	return CityState{City: location}
}

// CleanCompanyName strips a trailing corporate suffix (Inc, LLC, Corp...)
// and collapses whitespace.
func CleanCompanyName(name string) string {
	if name == "" {
		return ""
	}
	name = companySuffixRe.ReplaceAllString(name, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(name, " "))
}

// Company-size patterns, scanned in priority order. Range patterns carry two
// numeric groups and a two-argument format; count patterns one of each.
// The two shapes are kept distinct so a count match never formats a missing
// second group.
var sizePatterns = []struct {
	re     *regexp.Regexp
	format func(groups []string) string
}{
	{
		re:     regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*employees`),
		format: func(g []string) string { return fmt.Sprintf("%s-%s employees", g[1], g[2]) },
	},
	{
		re:     regexp.MustCompile(`(?i)(\d+)\s*employees`),
		format: func(g []string) string { return fmt.Sprintf("%s employees", g[1]) },
	},
	{
		re:     regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*people`),
		format: func(g []string) string { return fmt.Sprintf("%s-%s employees", g[1], g[2]) },
	},
	{
		re:     regexp.MustCompile(`(?i)(\d+)\s*people`),
		format: func(g []string) string { return fmt.Sprintf("%s employees", g[1]) },
	},
	{
		re:     regexp.MustCompile(`(?i)\$(\d+(?:\.\d+)?)\s*million`),
		format: func(g []string) string { return fmt.Sprintf("$%sM revenue", g[1]) },
	},
	{
		re:     regexp.MustCompile(`(?i)\$(\d+(?:\.\d+)?)\s*billion`),
		format: func(g []string) string { return fmt.Sprintf("$%sB revenue", g[1]) },
	},
}

// EstimateCompanySize scans text for employee-count or revenue markers and
// returns the first formatted match, or "" when none is found.
func EstimateCompanySize(text string) string {
	if text == "" {
		return ""
	}
	for _, p := range sizePatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			return p.format(m)
		}
	}
	return ""
}
