package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/internal/utils"
)

// maxEventIDAttempts bounds the collision-retry loop on event id generation
const maxEventIDAttempts = 5

// CreateEvent inserts a new event with a generated short id, retrying on id
// collisions.
func (r *PaymentRepo) CreateEvent(ctx context.Context, event *models.Event) error {
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if event.PaymentStatus == "" {
		event.PaymentStatus = models.EventPaymentPending
	}
	if event.DeliveryStatus == "" {
		event.DeliveryStatus = models.EventDeliveryPendingPayment
	}

	query := `
		INSERT INTO events (
			event_id, event_name, event_author, event_description,
			start_date, end_date, delivery_address, transaction_id,
			has_reserved_account, payment_status, delivery_status,
			created_at, updated_at
		) VALUES (
			:event_id, :event_name, :event_author, :event_description,
			:start_date, :end_date, :delivery_address, :transaction_id,
			:has_reserved_account, :payment_status, :delivery_status,
			:created_at, :updated_at
		)
	`

	for attempt := 0; attempt < maxEventIDAttempts; attempt++ {
		id, err := utils.GenerateEventID()
		if err != nil {
			return err
		}
		event.EventID = id

		_, err = r.db.NamedExecContext(ctx, query, event)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}

	return fmt.Errorf("failed to generate a unique event id after %d attempts: %w", maxEventIDAttempts, apperrors.ErrConflict)
}

// GetEvent retrieves an event by its id
func (r *PaymentRepo) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	query := `SELECT * FROM events WHERE event_id = $1`

	var event models.Event
	err := r.db.GetContext(ctx, &event, query, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event %s: %w", eventID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

// MarkEventPaid records a confirmed settlement on the event ledger: payment
// successful, delivery moves from "pending payment" to "pending", and the
// winning payment reference is stored for audit.
func (r *PaymentRepo) MarkEventPaid(ctx context.Context, eventID, paymentReference string) error {
	query := `
		UPDATE events
		SET payment_status = $1, delivery_status = $2, transaction_id = $3, updated_at = $4
		WHERE event_id = $5
	`
	return r.updateEvent(ctx, eventID, query,
		models.EventPaymentSuccessful, models.EventDeliveryPending, paymentReference, time.Now(), eventID)
}

// MarkEventPaymentFailed records a failed settlement. Delivery status is
// deliberately left untouched.
func (r *PaymentRepo) MarkEventPaymentFailed(ctx context.Context, eventID, paymentReference string) error {
	query := `
		UPDATE events
		SET payment_status = $1, transaction_id = $2, updated_at = $3
		WHERE event_id = $4
	`
	return r.updateEvent(ctx, eventID, query,
		models.EventPaymentFailed, paymentReference, time.Now(), eventID)
}

// SetReservedAccountFlag flips the has_reserved_account marker
func (r *PaymentRepo) SetReservedAccountFlag(ctx context.Context, eventID string, hasAccount bool) error {
	query := `
		UPDATE events
		SET has_reserved_account = $1, updated_at = $2
		WHERE event_id = $3
	`
	return r.updateEvent(ctx, eventID, query, hasAccount, time.Now(), eventID)
}

// ListConcludedEventsWithReservedAccounts returns events whose end date is
// strictly before asOf and that still hold a reserved account at the provider.
func (r *PaymentRepo) ListConcludedEventsWithReservedAccounts(ctx context.Context, asOf time.Time) ([]*models.Event, error) {
	query := `
		SELECT * FROM events
		WHERE end_date < $1 AND has_reserved_account = true
		ORDER BY end_date
	`

	var events []*models.Event
	if err := r.db.SelectContext(ctx, &events, query, asOf); err != nil {
		return nil, fmt.Errorf("failed to list concluded events: %w", err)
	}

	return events, nil
}

func (r *PaymentRepo) updateEvent(ctx context.Context, eventID, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("event %s: %w", eventID, apperrors.ErrNotFound)
	}

	return nil
}
