package crawl_test

import (
	"testing"

	"github.com/Nadavlistingsync/Agent-Scraper/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_SeenURL(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)

	assert.False(t, f.SeenURL("https://acme.com/team"))
	assert.True(t, f.SeenURL("https://acme.com/team"))
	assert.False(t, f.SeenURL("https://acme.com/contact"))
}

func TestFrontier_SeenURL_StripsFragment(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)

	assert.False(t, f.SeenURL("https://acme.com/about#team"))
	assert.True(t, f.SeenURL("https://acme.com/about#history"))
	assert.True(t, f.SeenURL("https://acme.com/about"))
}

func TestFrontier_SeenContent(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)

	assert.False(t, f.SeenContent("<html>team page</html>"))
	assert.True(t, f.SeenContent("<html>team page</html>"))
	assert.False(t, f.SeenContent("<html>contact page</html>"))
}
