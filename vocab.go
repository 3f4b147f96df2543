package leadgen

import (
	"regexp"
	"strings"
)

// Vocabulary holds the versioned title/phone/email grammars driving
// extraction and qualification. Treat the lists as configuration: they are
// compiled once at process start and read-only afterwards.
type Vocabulary struct {
	// DecisionMakerTitles are substrings indicating authority to make
	// purchasing or contracting decisions.
	DecisionMakerTitles []string

	// GenericTitles are substrings indicating junior/non-decision roles.
	// A generic match excludes a title even when a decision-maker
	// substring would otherwise match.
	GenericTitles []string

	// CompanyTypes seed search-query generation.
	CompanyTypes []string

	// TargetStates are the two-letter state codes accepted by the CLI.
	TargetStates []string

	// UserAgents are rotated by the HTTP fetcher.
	UserAgents []string

	titleRe   *regexp.Regexp
	genericRe *regexp.Regexp
}

// Phone and email grammars. PhoneRe matches optional +1, optional
// parentheses around the area code, and dot/dash/space separators.
var (
	PhoneRe = regexp.MustCompile(`(\+?1[\s\-.]?)?\(?\d{3}\)?[\s\-.]?\d{3}[\s\-.]?\d{4}`)
	EmailRe = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
)

// DefaultVocabulary returns the curated construction/real-estate vocabulary
// with its alternation patterns compiled.
func DefaultVocabulary() *Vocabulary {
	v := &Vocabulary{
		DecisionMakerTitles: []string{
			"Owner",
			"President",
			"Chief Executive",
			"CEO",
			"COO",
			"Managing Partner",
			"Managing Broker",
			"Principal Broker",
			"Vice President of Operations",
			"VP Operations",
			"Director of Operations",
			"Head Estimator",
		},
		GenericTitles: []string{
			"Agent",
			"Representative",
			"Coordinator",
			"Assistant",
			"Clerk",
			"Receptionist",
			"Intern",
		},
		CompanyTypes: []string{
			"general contractor",
			"design-build",
			"construction management",
			"HVAC contractor",
			"electrical contractor",
			"roofing contractor",
			"concrete contractor",
			"specialty contractor",
		},
		TargetStates: []string{
			"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
			"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
			"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
			"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
			"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
		},
		UserAgents: []string{
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
		},
	}
	v.Compile()
	return v
}

// Compile builds the title alternation patterns. Must be called after any
// modification to the title lists and before the matchers are used.
func (v *Vocabulary) Compile() {
	v.titleRe = compileAlternation(v.DecisionMakerTitles)
	v.genericRe = compileAlternation(v.GenericTitles)
}

func compileAlternation(terms []string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)`)
}

// MatchesDecisionMaker reports whether the title contains a decision-maker
// substring. It does not apply the generic exclusion; enrichment filtering
// uses this weaker check on API-returned candidate titles.
func (v *Vocabulary) MatchesDecisionMaker(title string) bool {
	return title != "" && v.titleRe.MatchString(title)
}

// MatchesGeneric reports whether the title contains a generic substring.
func (v *Vocabulary) MatchesGeneric(title string) bool {
	return title != "" && v.genericRe.MatchString(title)
}

// IsValidTitle reports whether a title denotes a genuine decision-maker.
// The generic check short-circuits first: a title matching both
// vocabularies is rejected.
func (v *Vocabulary) IsValidTitle(title string) bool {
	if title == "" {
		return false
	}
	if v.genericRe.MatchString(title) {
		return false
	}
	return v.titleRe.MatchString(title)
}

// ValidStates filters the given state codes down to known two-letter codes.
// Input is upper-cased and trimmed before comparison.
func (v *Vocabulary) ValidStates(states []string) []string {
	known := make(map[string]bool, len(v.TargetStates))
	for _, s := range v.TargetStates {
		known[s] = true
	}
	var out []string
	for _, s := range states {
		s = strings.ToUpper(strings.TrimSpace(s))
		if known[s] {
			out = append(out, s)
		}
	}
	return out
}
