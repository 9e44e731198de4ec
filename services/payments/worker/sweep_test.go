package worker

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/services/payments/mocks"
)

func TestSweepWorker_RejectsInvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	w := NewSweepWorker(uc, models.SweepConfig{Schedule: "not a cron expression"})

	err := w.Start()
	assert.Error(t, err)
}

func TestSweepWorker_StartAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	w := NewSweepWorker(uc, models.SweepConfig{Schedule: "0 0 * * *"})

	assert.NoError(t, w.Start())
	w.Stop()
}

func TestSweepWorker_RunReportsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().SweepReservedAccounts(gomock.Any(), gomock.Any()).
		Return(&models.SweepResult{Checked: 2, Deleted: 2}, nil)

	w := NewSweepWorker(uc, models.SweepConfig{Schedule: "0 0 * * *"})
	w.run()
}
