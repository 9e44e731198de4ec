package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/services/payments/mocks"
)

func TestCreateReservedAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().CreateReservedAccount(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.ReservedAccountRequest, user models.UserIdentity) (*models.ReservedAccountDetails, error) {
			assert.Equal(t, "EVTab123", req.EventID)
			assert.Equal(t, "host@example.com", user.Email)
			return &models.ReservedAccountDetails{
				AccountReference: "EVTab123",
				AccountNumber:    "1234567890",
			}, nil
		})

	c, rec := newJSONContext(http.MethodPost, "/merchant/reserved-accounts",
		`{"event_id":"EVTab123","bvn":"12345678901"}`)

	h := NewAccountHandler(uc)
	require.NoError(t, h.CreateReservedAccount(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "1234567890")
}

func TestCreateReservedAccountHandler_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().CreateReservedAccount(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrConflict)

	c, rec := newJSONContext(http.MethodPost, "/merchant/reserved-accounts", `{"event_id":"EVTab123"}`)

	h := NewAccountHandler(uc)
	require.NoError(t, h.CreateReservedAccount(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteReservedAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().DeleteReservedAccount(gomock.Any(), "EVTab123", "host@example.com").Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/merchant/reserved-accounts/EVTab123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("accountReference")
	c.SetParamValues("EVTab123")
	c.Set("email", "host@example.com")

	h := NewAccountHandler(uc)
	require.NoError(t, h.DeleteReservedAccount(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetActiveReservedAccountHandler_NoneActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().GetActiveReservedAccount(gomock.Any(), "host@example.com").
		Return("", apperrors.ErrNotFound)

	c, rec := newJSONContext(http.MethodGet, "/merchant/reserved-accounts/active", "")

	h := NewAccountHandler(uc)
	require.NoError(t, h.GetActiveReservedAccount(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
