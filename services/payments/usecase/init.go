package usecase

import (
	"time"

	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/internal/pkg/retry"
	"github.com/partycurrency/backend/services/payments"
)

// PaymentUC implements the payment transaction and reserved account flows
type PaymentUC struct {
	cfg          *models.Config
	paymentRepo  payments.PaymentRepo
	paymentGW    payments.PaymentGW
	sweepRetrier *retry.Retrier
}

// NewPaymentUC creates a new payment usecase
func NewPaymentUC(cfg *models.Config, repo payments.PaymentRepo, gw payments.PaymentGW) *PaymentUC {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.Sweep.MaxRetries
	retryCfg.BaseDelay = time.Second
	retryCfg.MaxDelay = time.Minute

	return &PaymentUC{
		cfg:          cfg,
		paymentRepo:  repo,
		paymentGW:    gw,
		sweepRetrier: retry.New(retryCfg, logger.GetGlobalLogger()),
	}
}
