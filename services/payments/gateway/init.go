package gateway

import (
	"github.com/partycurrency/backend/internal/pkg/database"
	"github.com/partycurrency/backend/internal/pkg/models"
	natspkg "github.com/partycurrency/backend/internal/pkg/nats"
	"github.com/partycurrency/backend/services/payments/gateway/monnify"
)

// PaymentGW bundles the outbound dependencies of the payments service:
// the provider REST client and the NATS event publisher.
type PaymentGW struct {
	*monnify.Client
	natsClient *natspkg.Client
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(cfg models.GatewayConfig, redis *database.RedisClient, natsClient *natspkg.Client) *PaymentGW {
	return &PaymentGW{
		Client:     monnify.NewClient(cfg, redis),
		natsClient: natsClient,
	}
}
