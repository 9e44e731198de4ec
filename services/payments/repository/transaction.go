package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/models"
)

// CreateTransaction inserts a new pending transaction. A colliding payment
// reference surfaces as a conflict.
func (r *PaymentRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	txn.ID = uuid.New().String()
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	query := `
		INSERT INTO transactions (
			id, payment_reference, transaction_reference, amount,
			customer_name, customer_email, event_id, user_id,
			payment_description, currency_code, contract_code, status,
			breakdown, redirect_url, created_at, updated_at
		) VALUES (
			:id, :payment_reference, :transaction_reference, :amount,
			:customer_name, :customer_email, :event_id, :user_id,
			:payment_description, :currency_code, :contract_code, :status,
			:breakdown, :redirect_url, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, txn)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("payment reference %s already exists: %w", txn.PaymentReference, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// GetTransactionByPaymentReference retrieves a transaction by its merchant
// payment reference.
func (r *PaymentRepo) GetTransactionByPaymentReference(ctx context.Context, paymentReference string) (*models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE payment_reference = $1`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, paymentReference)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", paymentReference, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// SetTransactionReference persists the provider-assigned reference returned
// on successful initialization.
func (r *PaymentRepo) SetTransactionReference(ctx context.Context, paymentReference, transactionReference string) error {
	query := `
		UPDATE transactions
		SET transaction_reference = $1, updated_at = $2
		WHERE payment_reference = $3
	`
	result, err := r.db.ExecContext(ctx, query, transactionReference, time.Now(), paymentReference)
	if err != nil {
		return fmt.Errorf("failed to set transaction reference: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transaction %s: %w", paymentReference, apperrors.ErrNotFound)
	}

	return nil
}

// SettleTransaction transitions a pending transaction to the given terminal
// status with a conditional update. The WHERE status = 'pending' clause is
// the compare-and-set that keeps concurrent callback deliveries from
// settling (and crediting) the same transaction twice.
func (r *PaymentRepo) SettleTransaction(ctx context.Context, paymentReference string, status models.TransactionStatus) (bool, error) {
	if !status.IsTerminal() {
		return false, fmt.Errorf("cannot settle transaction to non-terminal status %q", status)
	}

	query := `
		UPDATE transactions
		SET status = $1, updated_at = $2
		WHERE payment_reference = $3 AND status = $4
	`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), paymentReference, models.TransactionStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to settle transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 1 {
		return true, nil
	}

	// Zero rows: either the transaction is already terminal or it doesn't
	// exist. Distinguish so callers can report not-found.
	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM transactions WHERE payment_reference = $1)`, paymentReference); err != nil {
		return false, fmt.Errorf("failed to check transaction existence: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("transaction %s: %w", paymentReference, apperrors.ErrNotFound)
	}

	return false, nil
}
