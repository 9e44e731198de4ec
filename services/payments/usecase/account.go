package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
)

// CreateReservedAccount provisions a virtual bank account for one of the
// caller's events and records the reservation on both the event and the
// user.
func (u *PaymentUC) CreateReservedAccount(ctx context.Context, req *models.ReservedAccountRequest, user models.UserIdentity) (*models.ReservedAccountDetails, error) {
	event, err := u.paymentRepo.GetEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}

	if event.EventAuthor != user.Email {
		return nil, fmt.Errorf("event %s: %w", req.EventID, apperrors.ErrNotFound)
	}

	if req.CustomerName == "" {
		req.CustomerName = user.FullName()
	}

	details, err := u.paymentGW.CreateReservedAccount(ctx, event, req)
	if err != nil {
		return nil, err
	}

	if err := u.paymentRepo.SetReservedAccountFlag(ctx, event.EventID, true); err != nil {
		logger.Error("Failed to flag event as having a reserved account",
			logger.String("event_id", event.EventID),
			logger.Err(err))
	}

	ref := details.AccountReference
	if err := u.paymentRepo.SetVirtualAccountReference(ctx, user.Email, &ref); err != nil {
		logger.Warn("Failed to record virtual account reference on user",
			logger.String("user_id", user.Email),
			logger.Err(err))
	}

	u.publishAccountReleasedOrReserved(ctx, details.AccountReference, event.EventID, user.Email, true)

	logger.Info("Reserved virtual account",
		logger.String("account_reference", details.AccountReference),
		logger.String("event_id", event.EventID))

	return details, nil
}

// DeleteReservedAccount releases a virtual account at the provider and
// clears the local reservation markers. An account the provider has already
// forgotten is treated as released.
func (u *PaymentUC) DeleteReservedAccount(ctx context.Context, accountReference, userEmail string) error {
	if err := u.paymentGW.DeleteReservedAccount(ctx, accountReference); err != nil {
		return err
	}

	u.clearReservation(ctx, accountReference, userEmail)
	u.publishAccountReleasedOrReserved(ctx, accountReference, accountReference, userEmail, false)

	logger.Info("Released virtual account",
		logger.String("account_reference", accountReference),
		logger.String("user_id", userEmail))

	return nil
}

// GetActiveReservedAccount returns the account reference currently held by
// the user, or ErrNotFound when none is active.
func (u *PaymentUC) GetActiveReservedAccount(ctx context.Context, userEmail string) (string, error) {
	user, err := u.paymentRepo.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return "", err
	}

	if user.VirtualAccountReference == nil || *user.VirtualAccountReference == "" {
		return "", fmt.Errorf("no active reserved account for %s: %w", userEmail, apperrors.ErrNotFound)
	}

	return *user.VirtualAccountReference, nil
}

// ListAccountTransactions returns the transfers received on a reserved
// account, straight from the provider.
func (u *PaymentUC) ListAccountTransactions(ctx context.Context, accountReference string) ([]models.AccountTransaction, error) {
	return u.paymentGW.GetReservedAccountTransactions(ctx, accountReference)
}

// clearReservation removes the local markers for a released account. The
// account reference doubles as the event id it was reserved under.
func (u *PaymentUC) clearReservation(ctx context.Context, accountReference, userEmail string) {
	if err := u.paymentRepo.SetReservedAccountFlag(ctx, accountReference, false); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to clear reserved account flag",
				logger.String("event_id", accountReference),
				logger.Err(err))
		}
	}

	user, err := u.paymentRepo.GetUserByEmail(ctx, userEmail)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Failed to load user while clearing reservation",
				logger.String("user_id", userEmail),
				logger.Err(err))
		}
		return
	}

	if user.VirtualAccountReference != nil && *user.VirtualAccountReference == accountReference {
		if err := u.paymentRepo.SetVirtualAccountReference(ctx, userEmail, nil); err != nil {
			logger.Warn("Failed to clear virtual account reference on user",
				logger.String("user_id", userEmail),
				logger.Err(err))
		}
	}
}

func (u *PaymentUC) publishAccountReleasedOrReserved(ctx context.Context, accountReference, eventID, userEmail string, reserved bool) {
	event := &models.ReservedAccountEvent{
		AccountReference: accountReference,
		EventID:          eventID,
		UserID:           userEmail,
		OccurredAt:       time.Now(),
	}

	var err error
	if reserved {
		err = u.paymentGW.PublishAccountReserved(ctx, event)
	} else {
		err = u.paymentGW.PublishAccountReleased(ctx, event)
	}
	if err != nil {
		logger.Error("Failed to publish reserved account event",
			logger.String("account_reference", accountReference),
			logger.Bool("reserved", reserved),
			logger.Err(err))
	}
}
