package leadgen_test

import (
	"testing"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"github.com/stretchr/testify/assert"
)

func TestVocabulary_IsValidTitle(t *testing.T) {
	t.Parallel()

	vocab := leadgen.DefaultVocabulary()

	t.Run("accepts decision-maker titles", func(t *testing.T) {
		t.Parallel()

		assert.True(t, vocab.IsValidTitle("Owner"))
		assert.True(t, vocab.IsValidTitle("President & CEO"))
		assert.True(t, vocab.IsValidTitle("Managing Partner"))
		assert.True(t, vocab.IsValidTitle("managing broker")) // case-insensitive
	})

	t.Run("rejects generic titles", func(t *testing.T) {
		t.Parallel()

		assert.False(t, vocab.IsValidTitle("Leasing Agent"))
		assert.False(t, vocab.IsValidTitle("Executive Assistant"))
		assert.False(t, vocab.IsValidTitle("Receptionist"))
	})

	t.Run("generic exclusion short-circuits decision-maker match", func(t *testing.T) {
		t.Parallel()

		// "Assistant" is generic; the "President" substring must not rescue it.
		assert.False(t, vocab.IsValidTitle("Assistant to the President"))
	})

	t.Run("rejects empty and unknown titles", func(t *testing.T) {
		t.Parallel()

		assert.False(t, vocab.IsValidTitle(""))
		assert.False(t, vocab.IsValidTitle("Software Engineer"))
	})
}

func TestVocabulary_MatchesDecisionMaker(t *testing.T) {
	t.Parallel()

	vocab := leadgen.DefaultVocabulary()

	// The weaker enrichment-side check ignores the generic exclusion.
	assert.True(t, vocab.MatchesDecisionMaker("Assistant to the President"))
	assert.True(t, vocab.MatchesDecisionMaker("CEO"))
	assert.False(t, vocab.MatchesDecisionMaker("Project Manager"))
	assert.False(t, vocab.MatchesDecisionMaker(""))
}

func TestVocabulary_ValidStates(t *testing.T) {
	t.Parallel()

	vocab := leadgen.DefaultVocabulary()

	assert.Equal(t, []string{"TX", "CA"}, vocab.ValidStates([]string{"tx", " CA ", "ZZ"}))
	assert.Empty(t, vocab.ValidStates([]string{"Texas"}))
}
