package jobs

import (
	"context"
	"time"

	"tutoring-center-backend/internal/logger"
)

const purgeTimeout = 2 * time.Minute

// PurgeOrphanJoinRequests removes join requests left behind when a lifecycle
// change succeeded but its cleanup step failed.
func (jr *JobRunner) PurgeOrphanJoinRequests() {
	jr.runWithRecovery("PurgeOrphanJoinRequests", func() {
		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()

		if _, err := jr.purgeOrphanJoinRequests(ctx); err != nil {
			logger.Error("Failed to purge orphan join requests", "error", err)
		}
	})
}

func (jr *JobRunner) purgeOrphanJoinRequests(ctx context.Context) (int64, error) {
	count, err := jr.store.JoinRequestRepository.DeleteOrphaned(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Warn("Purged orphan join requests", "count", count)
	} else {
		logger.Info("No orphan join requests found")
	}
	return count, nil
}
