package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
)

// SettleTransaction verifies the transaction with the provider and moves it
// to a terminal state. Settlement is idempotent: concurrent callbacks for
// the same reference race on a conditional update, and the losers report
// the state the winner recorded. Ledger propagation (event status, user
// spend) happens exactly once, on the winning settle.
func (u *PaymentUC) SettleTransaction(ctx context.Context, paymentReference string) (*models.SettlementOutcome, error) {
	txn, err := u.paymentRepo.GetTransactionByPaymentReference(ctx, paymentReference)
	if err != nil {
		return nil, err
	}

	if txn.Status.IsTerminal() {
		return &models.SettlementOutcome{
			TransactionReference: txn.TransactionReference,
			Status:               txn.Status,
		}, nil
	}

	// A verification failure (timeout, provider outage) leaves the
	// transaction pending so a later callback or reconciliation can
	// settle it.
	verification, err := u.paymentGW.VerifyTransaction(ctx, paymentReference)
	if err != nil {
		return nil, err
	}

	status := models.TransactionStatusFailed
	if verification.Paid {
		status = models.TransactionStatusSuccessful
	}

	won, err := u.paymentRepo.SettleTransaction(ctx, paymentReference, status)
	if err != nil {
		return nil, err
	}

	if !won {
		settled, err := u.paymentRepo.GetTransactionByPaymentReference(ctx, paymentReference)
		if err != nil {
			return nil, err
		}
		return &models.SettlementOutcome{
			TransactionReference: settled.TransactionReference,
			Status:               settled.Status,
		}, nil
	}

	u.propagateSettlement(ctx, txn, status)

	return &models.SettlementOutcome{
		TransactionReference: txn.TransactionReference,
		Status:               status,
	}, nil
}

// propagateSettlement applies the ledger side effects of a won settle. The
// transaction itself is already terminal; failures here are logged and left
// for reconciliation rather than unwinding the settlement.
func (u *PaymentUC) propagateSettlement(ctx context.Context, txn *models.Transaction, status models.TransactionStatus) {
	if status == models.TransactionStatusSuccessful {
		if err := u.paymentRepo.MarkEventPaid(ctx, txn.EventID, txn.PaymentReference); err != nil {
			logger.Error("Failed to mark event paid",
				logger.String("event_id", txn.EventID),
				logger.String("payment_reference", txn.PaymentReference),
				logger.Err(err))
		}

		if err := u.paymentRepo.AddToTotalSpent(ctx, txn.UserID, txn.Amount); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Settled transaction has no matching user",
					logger.String("user_id", txn.UserID),
					logger.String("payment_reference", txn.PaymentReference))
			} else {
				logger.Error("Failed to update user total spent",
					logger.String("user_id", txn.UserID),
					logger.Err(err))
			}
		}
	} else {
		if err := u.paymentRepo.MarkEventPaymentFailed(ctx, txn.EventID, txn.PaymentReference); err != nil {
			logger.Error("Failed to mark event payment failed",
				logger.String("event_id", txn.EventID),
				logger.String("payment_reference", txn.PaymentReference),
				logger.Err(err))
		}
	}

	event := &models.TransactionSettledEvent{
		PaymentReference:     txn.PaymentReference,
		TransactionReference: txn.TransactionReference,
		EventID:              txn.EventID,
		UserID:               txn.UserID,
		Amount:               txn.Amount,
		Status:               string(status),
		SettledAt:            time.Now(),
	}
	if err := u.paymentGW.PublishTransactionSettled(ctx, event); err != nil {
		logger.Error("Failed to publish transaction settled event",
			logger.String("payment_reference", txn.PaymentReference),
			logger.Err(err))
	}
}
