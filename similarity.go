package leadgen

import "strings"

// MatchThreshold is the minimum similarity score (exclusive) for accepting
// an enrichment candidate as the same person.
const MatchThreshold = 0.7

// NameSimilarity scores two free-text names for likely-same-person identity
// in [0, 1]. Both names are tokenized on whitespace; an A-token counts as
// matched on the first B-token that equals, contains, or is contained by it
// (case-insensitive). The score is matched tokens over the larger token
// count.
func NameSimilarity(a, b string) float64 {
	tokensA := strings.Fields(strings.ToLower(a))
	tokensB := strings.Fields(strings.ToLower(b))
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	matched := 0
	for _, ta := range tokensA {
		for _, tb := range tokensB {
			if ta == tb || strings.Contains(tb, ta) || strings.Contains(ta, tb) {
				matched++
				break
			}
		}
	}

	denom := len(tokensA)
	if len(tokensB) > denom {
		denom = len(tokensB)
	}
	return float64(matched) / float64(denom)
}

// FindBestMatch returns the candidate whose name scores highest against
// target, or nil if no candidate scores strictly above MatchThreshold.
// Ties keep the first-seen highest candidate.
func FindBestMatch(target string, candidates []EnrichmentCandidate) *EnrichmentCandidate {
	var best *EnrichmentCandidate
	bestScore := 0.0
	for i := range candidates {
		score := NameSimilarity(target, candidates[i].Name())
		if score > bestScore {
			bestScore = score
			best = &candidates[i]
		}
	}
	if bestScore > MatchThreshold {
		return best
	}
	return nil
}
