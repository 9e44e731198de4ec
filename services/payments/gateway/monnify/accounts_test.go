package monnify

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/models"
)

func testEvent() *models.Event {
	return &models.Event{
		EventID:     "EVTab123",
		EventName:   "Ada's Birthday",
		EventAuthor: "host@example.com",
	}
}

func TestCreateReservedAccount(t *testing.T) {
	var gotPayload map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/login" {
			w.Write([]byte(testLoginBody))
			return
		}

		require.Equal(t, "/api/v2/bank-transfer/reserved-accounts", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Write([]byte(`{
			"requestSuccessful": true,
			"responseCode": "0",
			"responseBody": {
				"accountReference": "EVTab123",
				"accountName": "Ada's Birthday",
				"currencyCode": "NGN",
				"status": "ACTIVE",
				"accounts": [{"bankCode": "035", "bankName": "Example Bank", "accountNumber": "1234567890"}]
			}
		}`))
	})

	details, err := client.CreateReservedAccount(context.Background(), testEvent(),
		&models.ReservedAccountRequest{EventID: "EVTab123", CustomerName: "Ada Obi", BVN: "12345678901"})
	require.NoError(t, err)

	assert.Equal(t, "EVTab123", details.AccountReference)
	assert.Equal(t, "Example Bank", details.BankName)
	assert.Equal(t, "1234567890", details.AccountNumber)

	assert.Equal(t, "EVTab123", gotPayload["accountReference"])
	assert.Equal(t, "host@example.com", gotPayload["customerEmail"])
	assert.Equal(t, "true", gotPayload["getAllAvailableBanks"])
}

func TestCreateReservedAccount_DuplicateReferenceIsConflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/login" {
			w.Write([]byte(testLoginBody))
			return
		}

		w.Write([]byte(`{
			"requestSuccessful": false,
			"responseCode": "99",
			"responseMessage": "An account with the same reference already exists"
		}`))
	})

	details, err := client.CreateReservedAccount(context.Background(), testEvent(),
		&models.ReservedAccountRequest{EventID: "EVTab123"})
	assert.Nil(t, details)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCreateReservedAccount_OtherProviderFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/login" {
			w.Write([]byte(testLoginBody))
			return
		}

		w.Write([]byte(`{
			"requestSuccessful": false,
			"responseCode": "99",
			"responseMessage": "invalid bvn"
		}`))
	})

	_, err := client.CreateReservedAccount(context.Background(), testEvent(),
		&models.ReservedAccountRequest{EventID: "EVTab123"})
	require.Error(t, err)

	var gwErr *apperrors.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "99", gwErr.Code)
}

func TestDeleteReservedAccount(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
		wantErr    bool
	}{
		{
			name:       "deleted",
			statusCode: http.StatusOK,
			body:       `{"requestSuccessful": true, "responseCode": "0"}`,
		},
		{
			name:       "already gone 404",
			statusCode: http.StatusNotFound,
			body:       ``,
		},
		{
			name:       "already gone 400 with message",
			statusCode: http.StatusBadRequest,
			body:       `{"requestSuccessful": false, "responseMessage": "Account does not exist"}`,
		},
		{
			name:       "real failure",
			statusCode: http.StatusBadRequest,
			body:       `{"requestSuccessful": false, "responseCode": "99", "responseMessage": "cannot deallocate account with pending settlement"}`,
			wantErr:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/api/v1/auth/login" {
					w.Write([]byte(testLoginBody))
					return
				}

				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(t, "/api/v1/bank-transfer/reserved-accounts/reference/EVTab123", r.URL.Path)
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			err := client.DeleteReservedAccount(context.Background(), "EVTab123")
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetReservedAccountTransactions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/auth/login" {
			w.Write([]byte(testLoginBody))
			return
		}

		require.Equal(t, "/api/v1/bank-transfer/reserved-accounts/transactions", r.URL.Path)
		require.Equal(t, "EVTab123", r.URL.Query().Get("accountReference"))
		require.Equal(t, "0", r.URL.Query().Get("page"))
		require.Equal(t, "1000", r.URL.Query().Get("size"))

		w.Write([]byte(`{
			"requestSuccessful": true,
			"responseCode": "0",
			"responseBody": {
				"content": [
					{"amount": 5000, "currencyCode": "NGN", "paymentStatus": "PAID", "paymentReference": "ref-1", "completedOn": "2026-08-30 10:00:00", "paymentMethod": "ACCOUNT_TRANSFER"},
					{"amount": 2500, "currencyCode": "NGN", "paymentStatus": "PAID", "paymentReference": "ref-2", "completedOn": "2026-08-30 11:00:00", "paymentMethod": "ACCOUNT_TRANSFER"}
				]
			}
		}`))
	})

	transactions, err := client.GetReservedAccountTransactions(context.Background(), "EVTab123")
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, "ref-1", transactions[0].Reference)
	assert.Equal(t, float64(5000), transactions[0].Amount)
	assert.Equal(t, "PAID", transactions[1].Status)
}
