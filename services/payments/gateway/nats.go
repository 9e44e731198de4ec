package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
)

// NATS subjects for payment lifecycle events
const (
	SubjectTransactionSettled = "payments.transaction.settled"
	SubjectAccountReserved    = "payments.account.reserved"
	SubjectAccountReleased    = "payments.account.released"
)

// PublishTransactionSettled announces a terminal settlement to downstream
// consumers.
func (g *PaymentGW) PublishTransactionSettled(ctx context.Context, event *models.TransactionSettledEvent) error {
	logger.Info("Publishing transaction settled event",
		logger.String("payment_reference", event.PaymentReference),
		logger.String("status", event.Status))
	return g.publish(SubjectTransactionSettled, event)
}

// PublishAccountReserved announces a newly provisioned virtual account
func (g *PaymentGW) PublishAccountReserved(ctx context.Context, event *models.ReservedAccountEvent) error {
	logger.Info("Publishing account reserved event",
		logger.String("account_reference", event.AccountReference))
	return g.publish(SubjectAccountReserved, event)
}

// PublishAccountReleased announces that a virtual account was torn down
func (g *PaymentGW) PublishAccountReleased(ctx context.Context, event *models.ReservedAccountEvent) error {
	logger.Info("Publishing account released event",
		logger.String("account_reference", event.AccountReference))
	return g.publish(SubjectAccountReleased, event)
}

func (g *PaymentGW) publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}

	return g.natsClient.Publish(subject, data)
}
