package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/internal/utils"
)

// CreateTransaction quotes the currency order for an event and records a
// pending transaction for it. An event that already settled successfully
// cannot be paid for again.
func (u *PaymentUC) CreateTransaction(ctx context.Context, eventID string, user models.UserIdentity) (*models.TransactionQuote, error) {
	event, err := u.paymentRepo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.PaymentStatus == models.EventPaymentSuccessful {
		return nil, fmt.Errorf("event %s is already paid: %w", eventID, apperrors.ErrConflict)
	}

	breakdown := models.FeeBreakdown{
		Printing:       decimal.NewFromInt(u.cfg.Fees.Printing),
		Delivery:       decimal.NewFromInt(u.cfg.Fees.Delivery),
		Reconciliation: decimal.NewFromInt(u.cfg.Fees.Reconciliation),
	}

	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize fee breakdown: %w", err)
	}

	txn := &models.Transaction{
		PaymentReference:   utils.GeneratePaymentReference(),
		Amount:             breakdown.Total(),
		CustomerName:       user.FullName(),
		CustomerEmail:      user.Email,
		EventID:            event.EventID,
		UserID:             user.Email,
		PaymentDescription: "Payment for " + event.EventID,
		CurrencyCode:       u.cfg.Fees.CurrencyCode,
		ContractCode:       u.cfg.Gateway.ContractCode,
		Status:             models.TransactionStatusPending,
		Breakdown:          string(breakdownJSON),
		RedirectURL:        u.cfg.Gateway.CallbackURL,
	}

	if err := u.paymentRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	logger.Info("Created payment transaction",
		logger.String("payment_reference", txn.PaymentReference),
		logger.String("event_id", event.EventID),
		logger.String("user_id", user.Email))

	return &models.TransactionQuote{
		Amount:           breakdown,
		Total:            txn.Amount,
		CurrencyCode:     txn.CurrencyCode,
		PaymentReference: txn.PaymentReference,
	}, nil
}

// Checkout initializes the recorded transaction with the provider and
// returns the hosted checkout session. The event ledger is not touched
// here; only a verified settlement moves it.
func (u *PaymentUC) Checkout(ctx context.Context, paymentReference string) (*models.CheckoutSession, error) {
	txn, err := u.paymentRepo.GetTransactionByPaymentReference(ctx, paymentReference)
	if err != nil {
		return nil, err
	}

	if txn.Status.IsTerminal() {
		return nil, fmt.Errorf("transaction %s already settled as %s: %w",
			paymentReference, txn.Status, apperrors.ErrConflict)
	}

	session, err := u.paymentGW.InitializeTransaction(ctx, txn)
	if err != nil {
		return nil, err
	}

	if err := u.paymentRepo.SetTransactionReference(ctx, paymentReference, session.TransactionReference); err != nil {
		return nil, err
	}

	logger.Info("Initialized checkout session",
		logger.String("payment_reference", paymentReference),
		logger.String("transaction_reference", session.TransactionReference))

	return session, nil
}
