package leadgen

import (
	"strings"
	"sync"
)

// DedupeKey derives the canonical identity string for a lead: digits-only
// phone if present, else lowercased email, else lowercased name+company.
// The three sources are never combined. Derivation is deterministic; an
// empty key means the lead carries no identity at all.
func DedupeKey(lead *Lead) string {
	if phone := digitsOnlyRe.ReplaceAllString(lead.Phone, ""); phone != "" {
		return phone
	}
	if lead.Email != "" {
		return strings.ToLower(lead.Email)
	}
	return strings.ToLower(lead.Name) + strings.ToLower(lead.Company)
}

// KeySet is a monotonically growing set of dedupe keys. It is safe for
// concurrent use so that near-simultaneous candidates sharing a key are
// never both accepted.
type KeySet struct {
	mu   sync.Mutex
	keys map[string]bool
}

// NewKeySet creates a KeySet seeded with existing keys. Empty seed keys
// are ignored - a record with no identity never matches anything.
func NewKeySet(seed []string) *KeySet {
	s := &KeySet{keys: make(map[string]bool, len(seed))}
	for _, k := range seed {
		if k != "" {
			s.keys[k] = true
		}
	}
	return s
}

// Contains reports whether the key is present. An empty key is never
// present.
func (s *KeySet) Contains(key string) bool {
	if key == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[key]
}

// Add inserts the lead's key and reports whether it was newly added.
// Returns false for duplicates; true (without insertion) for empty keys.
func (s *KeySet) Add(lead *Lead) bool {
	key := DedupeKey(lead)
	if key == "" {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keys[key] {
		return false
	}
	s.keys[key] = true
	return true
}

// Len returns the number of distinct keys.
func (s *KeySet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

// IsDuplicate reports whether the candidate shares a non-empty dedupe key
// with any existing lead.
func IsDuplicate(candidate *Lead, existing []*Lead) bool {
	key := DedupeKey(candidate)
	if key == "" {
		return false
	}
	for _, e := range existing {
		if DedupeKey(e) == key {
			return true
		}
	}
	return false
}
