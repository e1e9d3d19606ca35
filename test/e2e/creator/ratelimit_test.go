//go:build e2e

package creator_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/creatordesk/pkg/creatorsdk"
	"github.com/stretchr/testify/require"
)

// TestSessionCreationRateLimit checks the strict per-IP limit on workspace
// creation.
func TestSessionCreationRateLimit(t *testing.T) {
	baseURL, cleanup := setupContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := creatorsdk.NewClient(baseURL)

	var lastErr error
	for range 30 {
		if _, lastErr = client.CreateSession(t.Context()); lastErr != nil {
			break
		}
	}

	require.Error(t, lastErr, "session creation should eventually be rate limited")
	assertAPIError(t, lastErr, http.StatusTooManyRequests, creatorsdk.ErrorCodeRateLimitExceeded)
}
