package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// GetUserByEmail retrieves a user's spend aggregate by email
func (r *PaymentRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT * FROM users WHERE email = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// AddToTotalSpent increments the user's lifetime spend in a single atomic
// update so concurrent settlements for different transactions never lose
// a credit.
func (r *PaymentRepo) AddToTotalSpent(ctx context.Context, email string, amount decimal.Decimal) error {
	query := `
		UPDATE users
		SET total_amount_spent = total_amount_spent + $1, updated_at = $2
		WHERE email = $3
	`
	result, err := r.db.ExecContext(ctx, query, amount, time.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to update total spent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}

	return nil
}

// SetVirtualAccountReference stores or clears the user's active reserved
// account reference.
func (r *PaymentRepo) SetVirtualAccountReference(ctx context.Context, email string, accountReference *string) error {
	query := `
		UPDATE users
		SET virtual_account_reference = $1, updated_at = $2
		WHERE email = $3
	`
	result, err := r.db.ExecContext(ctx, query, accountReference, time.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to set virtual account reference: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
	}

	return nil
}
