package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
)

func TestGetUserByEmail(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"email", "first_name", "last_name", "total_amount_spent",
		"virtual_account_reference", "created_at", "updated_at",
	}).AddRow(
		"host@example.com", "Ada", "Obi", "3400",
		nil, now, now,
	)

	mock.ExpectQuery("^SELECT \\* FROM users WHERE email").
		WithArgs("host@example.com").
		WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), "host@example.com")
	require.NoError(t, err)
	assert.Equal(t, "host@example.com", user.Email)
	assert.True(t, user.TotalAmountSpent.Equal(decimal.NewFromInt(3400)))
	assert.Nil(t, user.VirtualAccountReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT \\* FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"email"}))

	_, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddToTotalSpent(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	amount := decimal.NewFromInt(1700)
	mock.ExpectExec("UPDATE users").
		WithArgs(amount, sqlmock.AnyArg(), "host@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddToTotalSpent(context.Background(), "host@example.com", amount)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddToTotalSpent_UnknownUser(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "ghost@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AddToTotalSpent(context.Background(), "ghost@example.com", decimal.NewFromInt(500))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetVirtualAccountReference(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	ref := "EVTab123"
	mock.ExpectExec("UPDATE users").
		WithArgs(&ref, sqlmock.AnyArg(), "host@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetVirtualAccountReference(context.Background(), "host@example.com", &ref)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetVirtualAccountReference_Clear(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE users").
		WithArgs(nil, sqlmock.AnyArg(), "host@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetVirtualAccountReference(context.Background(), "host@example.com", nil)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
