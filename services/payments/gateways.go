package payments

import (
	"context"

	"github.com/partycurrency/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/partycurrency/backend/services/payments PaymentGW

// PaymentGW is the outbound side of the service: the payment provider's
// REST API and the NATS event stream.
type PaymentGW interface {
	// provider operations
	InitializeTransaction(ctx context.Context, txn *models.Transaction) (*models.CheckoutSession, error)
	VerifyTransaction(ctx context.Context, paymentReference string) (*models.VerificationResult, error)
	CreateReservedAccount(ctx context.Context, event *models.Event, req *models.ReservedAccountRequest) (*models.ReservedAccountDetails, error)
	DeleteReservedAccount(ctx context.Context, accountReference string) error
	GetReservedAccountTransactions(ctx context.Context, accountReference string) ([]models.AccountTransaction, error)

	// NATS gateway
	PublishTransactionSettled(ctx context.Context, event *models.TransactionSettledEvent) error
	PublishAccountReserved(ctx context.Context, event *models.ReservedAccountEvent) error
	PublishAccountReleased(ctx context.Context, event *models.ReservedAccountEvent) error
}
