package leadgen_test

import (
	"testing"

	leadgen "github.com/Nadavlistingsync/Agent-Scraper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := leadgen.Errorf(leadgen.ENOTFOUND, "lead %q not found", "test")

	assert.Equal(t, leadgen.ENOTFOUND, leadgen.ErrorCode(err))
	assert.Equal(t, "lead \"test\" not found", leadgen.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, leadgen.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, leadgen.ErrorMessage(nil))
}

func TestLead_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		lead := &leadgen.Lead{Name: "John Smith", Company: "Acme", Phone: "+15551234567"}
		assert.NoError(t, lead.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		lead := &leadgen.Lead{Company: "Acme", Phone: "+15551234567"}
		assert.Equal(t, leadgen.EINVALID, leadgen.ErrorCode(lead.Validate()))
	})

	t.Run("missing contact info", func(t *testing.T) {
		t.Parallel()

		lead := &leadgen.Lead{Name: "John Smith", Company: "Acme"}
		assert.Equal(t, leadgen.EINVALID, leadgen.ErrorCode(lead.Validate()))
	})
}

func TestLead_Qualified(t *testing.T) {
	t.Parallel()

	vocab := leadgen.DefaultVocabulary()

	t.Run("phone and valid title qualify", func(t *testing.T) {
		t.Parallel()

		lead := &leadgen.Lead{Name: "John Smith", Title: "Owner", Phone: "+15551234567"}
		assert.True(t, lead.Qualified(vocab))
	})

	t.Run("email alone never qualifies", func(t *testing.T) {
		t.Parallel()

		lead := &leadgen.Lead{Name: "John Smith", Title: "Owner", Email: "john@acme.com"}
		assert.False(t, lead.Qualified(vocab))
	})

	t.Run("generic title disqualifies", func(t *testing.T) {
		t.Parallel()

		lead := &leadgen.Lead{Name: "John Smith", Title: "Leasing Agent", Phone: "+15551234567"}
		assert.False(t, lead.Qualified(vocab))
	})
}
