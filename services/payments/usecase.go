package payments

import (
	"context"
	"time"

	"github.com/partycurrency/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/partycurrency/backend/services/payments PaymentUC

// PaymentUC drives the payment transaction lifecycle and the reserved
// account lifecycle.
type PaymentUC interface {
	// transaction lifecycle
	CreateTransaction(ctx context.Context, eventID string, user models.UserIdentity) (*models.TransactionQuote, error)
	Checkout(ctx context.Context, paymentReference string) (*models.CheckoutSession, error)
	SettleTransaction(ctx context.Context, paymentReference string) (*models.SettlementOutcome, error)

	// reserved accounts
	CreateReservedAccount(ctx context.Context, req *models.ReservedAccountRequest, user models.UserIdentity) (*models.ReservedAccountDetails, error)
	DeleteReservedAccount(ctx context.Context, accountReference, userEmail string) error
	GetActiveReservedAccount(ctx context.Context, userEmail string) (string, error)
	ListAccountTransactions(ctx context.Context, accountReference string) ([]models.AccountTransaction, error)
	SweepReservedAccounts(ctx context.Context, asOf time.Time) (*models.SweepResult, error)

	// event ledger
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
}
