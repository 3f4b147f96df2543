package leadgen_test

import (
	"testing"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "John Smith", "John Smith", 1.0},
		{"case-insensitive", "john smith", "JOHN SMITH", 1.0},
		{"near-miss first name is not a match", "John Smith", "Jon Smith", 0.5},
		{"initial contained by full token", "John Smith", "J Smith", 1.0},
		{"disjoint", "John Smith", "Jane Doe", 0.0},
		{"partial overlap", "John Smith", "John Williams", 0.5},
		{"middle name lowers score", "John Smith", "John Q Smith", 2.0 / 3.0},
		{"empty a", "", "John Smith", 0.0},
		{"empty b", "John Smith", "", 0.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, leadgen.NameSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestFindBestMatch(t *testing.T) {
	t.Parallel()

	t.Run("exact name beats near miss", func(t *testing.T) {
		t.Parallel()

		candidates := []leadgen.EnrichmentCandidate{
			{FirstName: "Jon", LastName: "Smith", Phone: "+15550000001"},
			{FirstName: "John", LastName: "Smith", Phone: "+15550000002"},
		}

		best := leadgen.FindBestMatch("John Smith", candidates)
		require.NotNil(t, best)
		assert.Equal(t, "+15550000002", best.Phone)
	})

	t.Run("nil when nothing clears the threshold", func(t *testing.T) {
		t.Parallel()

		candidates := []leadgen.EnrichmentCandidate{
			{FirstName: "Jane", LastName: "Doe"},
			{FirstName: "Bob", LastName: "Jones"},
		}
		assert.Nil(t, leadgen.FindBestMatch("John Smith", candidates))
	})

	t.Run("threshold is strict", func(t *testing.T) {
		t.Parallel()

		// One of two tokens matched scores exactly 0.5, below the bar.
		candidates := []leadgen.EnrichmentCandidate{
			{FirstName: "John", LastName: "Williams"},
		}
		assert.Nil(t, leadgen.FindBestMatch("John Smith", candidates))
	})

	t.Run("no candidates", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, leadgen.FindBestMatch("John Smith", nil))
	})
}
