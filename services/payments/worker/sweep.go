package worker

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/services/payments"
)

// sweepRunTimeout bounds a single sweep run so a wedged provider call
// cannot hold the scheduler slot forever.
const sweepRunTimeout = 10 * time.Minute

// SweepWorker runs the daily reserved account sweep on a cron schedule
type SweepWorker struct {
	paymentUC payments.PaymentUC
	cfg       models.SweepConfig
	cron      *cron.Cron
}

// NewSweepWorker creates a new sweep worker
func NewSweepWorker(paymentUC payments.PaymentUC, cfg models.SweepConfig) *SweepWorker {
	return &SweepWorker{
		paymentUC: paymentUC,
		cfg:       cfg,
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
	}
}

// Start schedules the sweep and begins the cron loop
func (w *SweepWorker) Start() error {
	if _, err := w.cron.AddFunc(w.cfg.Schedule, w.run); err != nil {
		return err
	}

	w.cron.Start()
	logger.Info("Reserved account sweep scheduled",
		logger.String("schedule", w.cfg.Schedule))

	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish
func (w *SweepWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	logger.Info("Reserved account sweep worker stopped")
}

// run releases the accounts of every event that ended before today
func (w *SweepWorker) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepRunTimeout)
	defer cancel()

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	result, err := w.paymentUC.SweepReservedAccounts(ctx, startOfToday)
	if err != nil {
		logger.Error("Reserved account sweep failed", logger.Err(err))
		return
	}

	logger.Info("Reserved account sweep completed",
		logger.Int("checked", result.Checked),
		logger.Int("deleted", result.Deleted),
		logger.Int("failed", result.Failed))
}
