package monnify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/models"
)

const testLoginBody = `{
	"requestSuccessful": true,
	"responseMessage": "success",
	"responseCode": "0",
	"responseBody": {"accessToken": "test-token", "expiresIn": 3600}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(models.GatewayConfig{
		BaseURL:      server.URL,
		APIKey:       "api-key",
		SecretKey:    "secret-key",
		ContractCode: "contract-123",
		CallbackURL:  "https://api.example.com/payments/callback",
	}, nil)
}

func TestAuthenticate(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(testLoginBody))
	})

	token, err := client.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-token", token)
	// base64("api-key:secret-key")
	assert.Equal(t, "Basic YXBpLWtleTpzZWNyZXQta2V5", gotAuth)
}

func TestAuthenticate_RejectedCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"requestSuccessful": false, "responseMessage": "invalid credentials"}`))
	})

	_, err := client.Authenticate(context.Background())
	require.Error(t, err)

	var authErr *apperrors.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestInitializeTransaction(t *testing.T) {
	var gotPayload map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/login" {
			w.Write([]byte(testLoginBody))
			return
		}

		require.Equal(t, "/api/v1/merchant/transactions/init-transaction", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Write([]byte(`{
			"requestSuccessful": true,
			"responseCode": "0",
			"responseBody": {"transactionReference": "MNFY|TXN|001", "checkoutUrl": "https://pay.example.com/abc"}
		}`))
	})

	txn := &models.Transaction{
		Amount:             decimal.NewFromInt(1700),
		PaymentReference:   "party1700000000",
		CustomerName:       "Ada Obi",
		CustomerEmail:      "host@example.com",
		PaymentDescription: "Payment for EVTab123",
		CurrencyCode:       "NGN",
		ContractCode:       "contract-123",
	}

	session, err := client.InitializeTransaction(context.Background(), txn)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/abc", session.CheckoutURL)
	assert.Equal(t, "MNFY|TXN|001", session.TransactionReference)

	assert.Equal(t, float64(1700), gotPayload["amount"])
	assert.Equal(t, "party1700000000", gotPayload["paymentReference"])
	assert.Equal(t, "https://api.example.com/payments/callback", gotPayload["redirectUrl"])
	assert.ElementsMatch(t, []interface{}{"CARD", "ACCOUNT_TRANSFER"}, gotPayload["paymentMethods"])
}

func TestVerifyTransaction(t *testing.T) {
	testCases := []struct {
		name          string
		paymentStatus string
		wantPaid      bool
	}{
		{name: "paid", paymentStatus: "PAID", wantPaid: true},
		{name: "pending is not paid", paymentStatus: "PENDING", wantPaid: false},
		{name: "failed is not paid", paymentStatus: "FAILED", wantPaid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/api/v1/auth/login" {
					w.Write([]byte(testLoginBody))
					return
				}

				require.Equal(t, "/api/v2/merchant/transactions/query", r.URL.Path)
				require.Equal(t, "party1700000000", r.URL.Query().Get("paymentReference"))

				body, _ := json.Marshal(map[string]interface{}{
					"requestSuccessful": true,
					"responseCode":      "0",
					"responseBody":      map[string]string{"paymentStatus": tc.paymentStatus},
				})
				w.Write(body)
			})

			result, err := client.VerifyTransaction(context.Background(), "party1700000000")
			require.NoError(t, err)
			assert.Equal(t, tc.wantPaid, result.Paid)
			assert.Equal(t, tc.paymentStatus, result.PaymentStatus)
		})
	}
}

func TestVerifyTransaction_ProviderDown(t *testing.T) {
	client := NewClient(models.GatewayConfig{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		APIKey:  "k", SecretKey: "s",
	}, nil)

	_, err := client.VerifyTransaction(context.Background(), "party1700000000")
	require.Error(t, err)

	var authErr *apperrors.AuthError
	assert.ErrorAs(t, err, &authErr)
}
