package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/services/payments/mocks"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("email", "host@example.com")
	c.Set("first_name", "Ada")
	c.Set("last_name", "Obi")

	return c, rec
}

func TestCreateTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().CreateTransaction(gomock.Any(), "EVTab123", models.UserIdentity{
		Email:     "host@example.com",
		FirstName: "Ada",
		LastName:  "Obi",
	}).Return(&models.TransactionQuote{
		Total:            decimal.NewFromInt(1700),
		CurrencyCode:     "NGN",
		PaymentReference: "party1700000000",
	}, nil)

	c, rec := newJSONContext(http.MethodPost, "/payments/transactions", `{"event_id":"EVTab123"}`)

	h := NewTransactionHandler(uc)
	require.NoError(t, h.CreateTransaction(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "party1700000000")
}

func TestCreateTransactionHandler_MissingEventID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)

	c, rec := newJSONContext(http.MethodPost, "/payments/transactions", `{}`)

	h := NewTransactionHandler(uc)
	require.NoError(t, h.CreateTransaction(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTransactionHandler_AlreadyPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().CreateTransaction(gomock.Any(), "EVTab123", gomock.Any()).
		Return(nil, apperrors.ErrConflict)

	c, rec := newJSONContext(http.MethodPost, "/payments/transactions", `{"event_id":"EVTab123"}`)

	h := NewTransactionHandler(uc)
	require.NoError(t, h.CreateTransaction(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().Checkout(gomock.Any(), "party1700000000").
		Return(&models.CheckoutSession{
			CheckoutURL:          "https://pay.example.com/abc",
			TransactionReference: "MNFY|TXN|001",
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/payments/checkout", `{"payment_reference":"party1700000000"}`)

	h := NewTransactionHandler(uc)
	require.NoError(t, h.Checkout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://pay.example.com/abc")
}

func TestCheckoutHandler_UnknownReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockPaymentUC(ctrl)
	uc.EXPECT().Checkout(gomock.Any(), "party999").
		Return(nil, apperrors.ErrNotFound)

	c, rec := newJSONContext(http.MethodPost, "/payments/checkout", `{"payment_reference":"party999"}`)

	h := NewTransactionHandler(uc)
	require.NoError(t, h.Checkout(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
