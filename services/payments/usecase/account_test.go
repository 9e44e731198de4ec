package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/services/payments/mocks"
)

func strPtr(s string) *string { return &s }

func TestCreateReservedAccount_MarksEventAndUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), repo, gw)

	event := &models.Event{
		EventID:     "EVTab123",
		EventName:   "Ada's Birthday",
		EventAuthor: "host@example.com",
	}
	req := &models.ReservedAccountRequest{EventID: "EVTab123", BVN: "12345678901"}

	repo.EXPECT().GetEvent(gomock.Any(), "EVTab123").Return(event, nil)
	gw.EXPECT().CreateReservedAccount(gomock.Any(), event, req).
		Return(&models.ReservedAccountDetails{
			AccountReference: "EVTab123",
			AccountNumber:    "1234567890",
			BankName:         "Example Bank",
		}, nil)
	repo.EXPECT().SetReservedAccountFlag(gomock.Any(), "EVTab123", true).Return(nil)
	repo.EXPECT().SetVirtualAccountReference(gomock.Any(), "host@example.com", gomock.Any()).Return(nil)
	gw.EXPECT().PublishAccountReserved(gomock.Any(), gomock.Any()).Return(nil)

	details, err := uc.CreateReservedAccount(context.Background(), req, testIdentity())
	require.NoError(t, err)
	assert.Equal(t, "EVTab123", details.AccountReference)
	assert.Equal(t, "Ada Obi", req.CustomerName) // defaulted from the caller's identity
}

func TestCreateReservedAccount_ForeignEventLooksMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), repo, gw)

	repo.EXPECT().GetEvent(gomock.Any(), "EVTab123").Return(&models.Event{
		EventID:     "EVTab123",
		EventAuthor: "someone-else@example.com",
	}, nil)

	details, err := uc.CreateReservedAccount(context.Background(),
		&models.ReservedAccountRequest{EventID: "EVTab123"}, testIdentity())
	assert.Nil(t, details)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateReservedAccount_ConflictPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), repo, gw)

	event := &models.Event{EventID: "EVTab123", EventAuthor: "host@example.com"}
	repo.EXPECT().GetEvent(gomock.Any(), "EVTab123").Return(event, nil)
	gw.EXPECT().CreateReservedAccount(gomock.Any(), event, gomock.Any()).
		Return(nil, apperrors.ErrConflict)

	details, err := uc.CreateReservedAccount(context.Background(),
		&models.ReservedAccountRequest{EventID: "EVTab123"}, testIdentity())
	assert.Nil(t, details)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestDeleteReservedAccount_ClearsMarkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), repo, gw)

	gw.EXPECT().DeleteReservedAccount(gomock.Any(), "EVTab123").Return(nil)
	repo.EXPECT().SetReservedAccountFlag(gomock.Any(), "EVTab123", false).Return(nil)
	repo.EXPECT().GetUserByEmail(gomock.Any(), "host@example.com").
		Return(&models.User{Email: "host@example.com", VirtualAccountReference: strPtr("EVTab123")}, nil)
	repo.EXPECT().SetVirtualAccountReference(gomock.Any(), "host@example.com", nil).Return(nil)
	gw.EXPECT().PublishAccountReleased(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.DeleteReservedAccount(context.Background(), "EVTab123", "host@example.com")
	assert.NoError(t, err)
}

func TestDeleteReservedAccount_KeepsUnrelatedUserReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), repo, gw)

	gw.EXPECT().DeleteReservedAccount(gomock.Any(), "EVTab123").Return(nil)
	repo.EXPECT().SetReservedAccountFlag(gomock.Any(), "EVTab123", false).Return(nil)
	repo.EXPECT().GetUserByEmail(gomock.Any(), "host@example.com").
		Return(&models.User{Email: "host@example.com", VirtualAccountReference: strPtr("EVTother")}, nil)
	gw.EXPECT().PublishAccountReleased(gomock.Any(), gomock.Any()).Return(nil)

	// The user's active reference points at a different account, so it
	// must not be cleared.

	err := uc.DeleteReservedAccount(context.Background(), "EVTab123", "host@example.com")
	assert.NoError(t, err)
}

func TestGetActiveReservedAccount(t *testing.T) {
	testCases := []struct {
		name      string
		user      *models.User
		userErr   error
		wantRef   string
		wantErrIs error
	}{
		{
			name:    "active reference",
			user:    &models.User{Email: "host@example.com", VirtualAccountReference: strPtr("EVTab123")},
			wantRef: "EVTab123",
		},
		{
			name:      "no reference",
			user:      &models.User{Email: "host@example.com"},
			wantErrIs: apperrors.ErrNotFound,
		},
		{
			name:      "unknown user",
			userErr:   apperrors.ErrNotFound,
			wantErrIs: apperrors.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPaymentRepo(ctrl)
			gw := mocks.NewMockPaymentGW(ctrl)
			uc := NewPaymentUC(testConfig(), repo, gw)

			repo.EXPECT().GetUserByEmail(gomock.Any(), "host@example.com").Return(tc.user, tc.userErr)

			ref, err := uc.GetActiveReservedAccount(context.Background(), "host@example.com")
			if tc.wantErrIs != nil {
				assert.ErrorIs(t, err, tc.wantErrIs)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantRef, ref)
		})
	}
}

func TestListAccountTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPaymentRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), repo, gw)

	gw.EXPECT().GetReservedAccountTransactions(gomock.Any(), "EVTab123").
		Return([]models.AccountTransaction{
			{Amount: 5000, Currency: "NGN", Status: "PAID", Reference: "ref-1"},
		}, nil)

	transactions, err := uc.ListAccountTransactions(context.Background(), "EVTab123")
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "ref-1", transactions[0].Reference)
}
