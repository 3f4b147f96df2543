package crawl

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
)

// Frontier tracks which pages a session has already processed. URLs are
// deduplicated with a Bloom filter so a long run stays cheap on memory;
// page content is deduplicated exactly by hash, which catches the common
// case of /team and /about-us serving the same document.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu      sync.Mutex
	urls    *bloom.BloomFilter
	content map[uint64]struct{}
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		urls:    bloom.NewWithEstimates(n, fpRate),
		content: make(map[uint64]struct{}),
	}
}

// SeenURL records the URL and reports whether it had been recorded before.
// Fragments are stripped first, so URLs differing only by fragment count
// as the same page. False positives are possible, false negatives are not.
func (f *Frontier) SeenURL(rawURL string) bool {
	if idx := strings.Index(rawURL, "#"); idx != -1 {
		rawURL = rawURL[:idx]
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.urls.TestString(rawURL) {
		return true
	}
	f.urls.AddString(rawURL)
	return false
}

// SeenContent records the page content's hash and reports whether an
// identical page was processed before.
func (f *Frontier) SeenContent(html string) bool {
	h := xxhash.Sum64String(html)

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.content[h]; ok {
		return true
	}
	f.content[h] = struct{}{}
	return false
}
