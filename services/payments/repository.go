package payments

import (
	"context"
	"time"

	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/partycurrency/backend/services/payments PaymentRepo

// PaymentRepo persists transactions and the event/user ledger fields the
// payment flows update.
type PaymentRepo interface {
	// transactions
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	GetTransactionByPaymentReference(ctx context.Context, paymentReference string) (*models.Transaction, error)
	SetTransactionReference(ctx context.Context, paymentReference, transactionReference string) error
	// SettleTransaction transitions a pending transaction to the given
	// terminal status. Returns false when the transaction was already
	// terminal (the settle lost the race), without error.
	SettleTransaction(ctx context.Context, paymentReference string, status models.TransactionStatus) (bool, error)

	// events
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	MarkEventPaid(ctx context.Context, eventID, paymentReference string) error
	MarkEventPaymentFailed(ctx context.Context, eventID, paymentReference string) error
	SetReservedAccountFlag(ctx context.Context, eventID string, hasAccount bool) error
	ListConcludedEventsWithReservedAccounts(ctx context.Context, asOf time.Time) ([]*models.Event, error)

	// user spend aggregate
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	AddToTotalSpent(ctx context.Context, email string, amount decimal.Decimal) error
	SetVirtualAccountReference(ctx context.Context, email string, accountReference *string) error
}
