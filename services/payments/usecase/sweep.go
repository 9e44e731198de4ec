package usecase

import (
	"context"
	"time"

	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
)

// SweepReservedAccounts releases the virtual accounts of every event that
// has concluded before asOf. Each release is retried with backoff; one
// event's failure never aborts the rest of the run.
func (u *PaymentUC) SweepReservedAccounts(ctx context.Context, asOf time.Time) (*models.SweepResult, error) {
	events, err := u.paymentRepo.ListConcludedEventsWithReservedAccounts(ctx, asOf)
	if err != nil {
		return nil, err
	}

	result := &models.SweepResult{Checked: len(events)}

	for _, event := range events {
		err := u.sweepRetrier.Execute(ctx, func(ctx context.Context) error {
			return u.paymentGW.DeleteReservedAccount(ctx, event.EventID)
		})
		if err != nil {
			result.Failed++
			logger.Error("Failed to release reserved account during sweep",
				logger.String("event_id", event.EventID),
				logger.Err(err))
			continue
		}

		u.clearReservation(ctx, event.EventID, event.EventAuthor)
		u.publishAccountReleasedOrReserved(ctx, event.EventID, event.EventID, event.EventAuthor, false)
		result.Deleted++
	}

	logger.Info("Reserved account sweep finished",
		logger.Int("checked", result.Checked),
		logger.Int("deleted", result.Deleted),
		logger.Int("failed", result.Failed))

	return result, nil
}
