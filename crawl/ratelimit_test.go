package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/Nadavlistingsync/Agent-Scraper/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_SpacesRequestsWithinDomain(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(100) // 10ms between requests
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Wait(ctx, "acme.com"))
	}
	// Burst of 1: the second and third calls each wait ~10ms.
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestDomainLimiter_DomainsAreIndependent(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(1) // 1 rps would block a same-domain repeat
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, limiter.Wait(ctx, "acme.com"))
	require.NoError(t, limiter.Wait(ctx, "doe-roofing.com"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestDomainLimiter_ContextCancellation(t *testing.T) {
	t.Parallel()

	limiter := crawl.NewDomainLimiter(0.001)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, limiter.Wait(ctx, "acme.com"))
	cancel()
	assert.Error(t, limiter.Wait(ctx, "acme.com"))
}
