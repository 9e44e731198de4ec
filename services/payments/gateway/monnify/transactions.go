package monnify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/partycurrency/backend/internal/pkg/models"
)

type initTransactionRequest struct {
	Amount             float64  `json:"amount"`
	CustomerName       string   `json:"customerName"`
	CustomerEmail      string   `json:"customerEmail"`
	PaymentReference   string   `json:"paymentReference"`
	PaymentDescription string   `json:"paymentDescription"`
	CurrencyCode       string   `json:"currencyCode"`
	ContractCode       string   `json:"contractCode"`
	RedirectURL        string   `json:"redirectUrl"`
	PaymentMethods     []string `json:"paymentMethods"`
}

type initTransactionResponseBody struct {
	TransactionReference string `json:"transactionReference"`
	PaymentReference     string `json:"paymentReference"`
	CheckoutURL          string `json:"checkoutUrl"`
}

type queryTransactionResponseBody struct {
	TransactionReference string `json:"transactionReference"`
	PaymentReference     string `json:"paymentReference"`
	PaymentStatus        string `json:"paymentStatus"`
}

// paidStatus is the only provider status that counts as a successful payment
const paidStatus = "PAID"

// InitializeTransaction registers the transaction with the provider and
// returns the hosted checkout session.
func (c *Client) InitializeTransaction(ctx context.Context, txn *models.Transaction) (*models.CheckoutSession, error) {
	amount, _ := txn.Amount.Float64()
	payload := initTransactionRequest{
		Amount:             amount,
		CustomerName:       txn.CustomerName,
		CustomerEmail:      txn.CustomerEmail,
		PaymentReference:   txn.PaymentReference,
		PaymentDescription: txn.PaymentDescription,
		CurrencyCode:       txn.CurrencyCode,
		ContractCode:       txn.ContractCode,
		RedirectURL:        c.cfg.CallbackURL,
		PaymentMethods:     []string{"CARD", "ACCOUNT_TRANSFER"},
	}

	envelope, _, err := c.doAuthenticated(ctx, http.MethodPost, "/api/v1/merchant/transactions/init-transaction", payload)
	if err != nil {
		return nil, err
	}
	if !envelope.RequestSuccessful {
		return nil, gatewayError(envelope)
	}

	var body initTransactionResponseBody
	if err := json.Unmarshal(envelope.ResponseBody, &body); err != nil {
		return nil, fmt.Errorf("invalid init-transaction response body: %w", err)
	}

	return &models.CheckoutSession{
		CheckoutURL:          body.CheckoutURL,
		TransactionReference: body.TransactionReference,
	}, nil
}

// VerifyTransaction queries the provider for the authoritative payment
// status of a transaction. Paid is true only for an explicit PAID status;
// every other status, including explicit failures, reports unpaid.
func (c *Client) VerifyTransaction(ctx context.Context, paymentReference string) (*models.VerificationResult, error) {
	path := "/api/v2/merchant/transactions/query?paymentReference=" + url.QueryEscape(paymentReference)

	envelope, _, err := c.doAuthenticated(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if !envelope.RequestSuccessful {
		return nil, gatewayError(envelope)
	}

	var body queryTransactionResponseBody
	if err := json.Unmarshal(envelope.ResponseBody, &body); err != nil {
		return nil, fmt.Errorf("invalid transaction query response body: %w", err)
	}

	return &models.VerificationResult{
		Paid:          body.PaymentStatus == paidStatus,
		PaymentStatus: body.PaymentStatus,
	}, nil
}
