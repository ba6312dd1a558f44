package jobs

import (
	"context"
	"time"

	"gardenhub-backend/internal/logger"
)

// ExpireStaleActivations clears activation tokens from invited
// accounts that were never activated within the configured TTL. The
// accounts stay, so a later invitation can mint a fresh token.
func (jr *JobRunner) ExpireStaleActivations() {
	jr.runWithRecovery("ExpireStaleActivations", func() {
		ctx := context.Background()
		ttl := time.Duration(jr.config.App.ActivationTokenTTLDays) * 24 * time.Hour
		cutoff := jr.clk.Now().Add(-ttl)

		count, err := jr.store.ClearStaleActivationTokens(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale activation tokens", "error", err)
			return
		}
		logger.Info("Expired stale activation tokens", "count", count)
	})
}
