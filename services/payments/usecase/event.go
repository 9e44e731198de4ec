package usecase

import (
	"context"

	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
)

// CreateEvent registers a new event on the ledger. The short event id is
// generated by the store, retrying on collisions.
func (u *PaymentUC) CreateEvent(ctx context.Context, event *models.Event) error {
	if err := u.paymentRepo.CreateEvent(ctx, event); err != nil {
		return err
	}

	logger.Info("Created event",
		logger.String("event_id", event.EventID),
		logger.String("event_author", event.EventAuthor))

	return nil
}

// GetEvent returns a single event by id
func (u *PaymentUC) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	return u.paymentRepo.GetEvent(ctx, eventID)
}
