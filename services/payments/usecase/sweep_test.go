package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/services/payments/mocks"
)

func concludedEvent(id, author string) *models.Event {
	return &models.Event{
		EventID:            id,
		EventAuthor:        author,
		EndDate:            time.Now().AddDate(0, 0, -2),
		HasReservedAccount: true,
	}
}

func TestSweepReservedAccounts_OneFailureDoesNotAbortRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), repo, gw)

	asOf := time.Now()
	events := []*models.Event{
		concludedEvent("EVTaaa11", "a@example.com"),
		concludedEvent("EVTbbb22", "b@example.com"),
		concludedEvent("EVTccc33", "c@example.com"),
	}
	repo.EXPECT().ListConcludedEventsWithReservedAccounts(gomock.Any(), asOf).Return(events, nil)

	gw.EXPECT().DeleteReservedAccount(gomock.Any(), "EVTaaa11").Return(nil)
	gw.EXPECT().DeleteReservedAccount(gomock.Any(), "EVTbbb22").
		Return(&apperrors.GatewayError{Code: "50", Message: "internal error"})
	gw.EXPECT().DeleteReservedAccount(gomock.Any(), "EVTccc33").Return(nil)

	for _, id := range []string{"EVTaaa11", "EVTccc33"} {
		repo.EXPECT().SetReservedAccountFlag(gomock.Any(), id, false).Return(nil)
		gw.EXPECT().PublishAccountReleased(gomock.Any(), gomock.Any()).Return(nil)
	}
	repo.EXPECT().GetUserByEmail(gomock.Any(), "a@example.com").
		Return(&models.User{Email: "a@example.com", VirtualAccountReference: strPtr("EVTaaa11")}, nil)
	repo.EXPECT().SetVirtualAccountReference(gomock.Any(), "a@example.com", nil).Return(nil)
	repo.EXPECT().GetUserByEmail(gomock.Any(), "c@example.com").
		Return(&models.User{Email: "c@example.com"}, nil)

	result, err := uc.SweepReservedAccounts(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Checked)
	assert.Equal(t, 2, result.Deleted)
	assert.Equal(t, 1, result.Failed)
}

func TestSweepReservedAccounts_NothingToSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), repo, gw)

	asOf := time.Now()
	repo.EXPECT().ListConcludedEventsWithReservedAccounts(gomock.Any(), asOf).
		Return([]*models.Event{}, nil)

	result, err := uc.SweepReservedAccounts(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, &models.SweepResult{}, result)
}

func TestSweepReservedAccounts_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), repo, gw)

	asOf := time.Now()
	repo.EXPECT().ListConcludedEventsWithReservedAccounts(gomock.Any(), asOf).
		Return(nil, errListUnavailable)

	result, err := uc.SweepReservedAccounts(context.Background(), asOf)
	assert.Nil(t, result)
	assert.Error(t, err)
}

var errListUnavailable = &apperrors.UnavailableError{Op: "list", Err: context.DeadlineExceeded}
