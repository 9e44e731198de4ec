package monnify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/models"
)

type createReservedAccountRequest struct {
	AccountReference     string `json:"accountReference"`
	AccountName          string `json:"accountName"`
	CurrencyCode         string `json:"currencyCode"`
	ContractCode         string `json:"contractCode"`
	CustomerEmail        string `json:"customerEmail"`
	CustomerName         string `json:"customerName"`
	BVN                  string `json:"bvn"`
	GetAllAvailableBanks string `json:"getAllAvailableBanks"`
}

type reservedAccountResponseBody struct {
	AccountReference     string `json:"accountReference"`
	AccountName          string `json:"accountName"`
	CurrencyCode         string `json:"currencyCode"`
	ReservationReference string `json:"reservationReference"`
	ReservedAccountType  string `json:"reservedAccountType"`
	Status               string `json:"status"`
	CreatedOn            string `json:"createdOn"`
	Accounts             []struct {
		BankCode      string `json:"bankCode"`
		BankName      string `json:"bankName"`
		AccountNumber string `json:"accountNumber"`
	} `json:"accounts"`
}

type accountTransactionsResponseBody struct {
	Content []struct {
		Amount             float64 `json:"amount"`
		CurrencyCode       string  `json:"currencyCode"`
		PaymentStatus      string  `json:"paymentStatus"`
		PaymentReference   string  `json:"paymentReference"`
		CompletedOn        string  `json:"completedOn"`
		PaymentDescription string  `json:"paymentDescription"`
		PaymentMethod      string  `json:"paymentMethod"`
	} `json:"content"`
}

// conflictResponseCode is the provider code for a duplicate account reference
const conflictResponseCode = "99"

// CreateReservedAccount provisions a virtual bank account keyed by the
// event id. A duplicate reference is surfaced as a conflict, distinct from
// other provider failures.
func (c *Client) CreateReservedAccount(ctx context.Context, event *models.Event, req *models.ReservedAccountRequest) (*models.ReservedAccountDetails, error) {
	payload := createReservedAccountRequest{
		AccountReference:     event.EventID,
		AccountName:          event.EventName,
		CurrencyCode:         "NGN",
		ContractCode:         c.cfg.ContractCode,
		CustomerEmail:        event.EventAuthor,
		CustomerName:         req.CustomerName,
		BVN:                  req.BVN,
		GetAllAvailableBanks: "true",
	}

	envelope, _, err := c.doAuthenticated(ctx, http.MethodPost, "/api/v2/bank-transfer/reserved-accounts", payload)
	if err != nil {
		return nil, err
	}
	if !envelope.RequestSuccessful {
		if envelope.ResponseCode == conflictResponseCode && strings.Contains(strings.ToLower(envelope.ResponseMessage), "same reference") {
			return nil, fmt.Errorf("reserved account %s already exists: %w", event.EventID, apperrors.ErrConflict)
		}
		return nil, gatewayError(envelope)
	}

	var body reservedAccountResponseBody
	if err := json.Unmarshal(envelope.ResponseBody, &body); err != nil {
		return nil, fmt.Errorf("invalid reserved account response body: %w", err)
	}

	details := &models.ReservedAccountDetails{
		AccountReference:     body.AccountReference,
		AccountName:          body.AccountName,
		CurrencyCode:         body.CurrencyCode,
		ReservationReference: body.ReservationReference,
		ReservedAccountType:  body.ReservedAccountType,
		Status:               body.Status,
		CreatedOn:            body.CreatedOn,
	}
	if len(body.Accounts) > 0 {
		details.BankCode = body.Accounts[0].BankCode
		details.BankName = body.Accounts[0].BankName
		details.AccountNumber = body.Accounts[0].AccountNumber
	}

	return details, nil
}

// DeleteReservedAccount tears down a virtual account. An account the
// provider no longer knows about (404, or 400 with a not-found message)
// counts as a successful delete.
func (c *Client) DeleteReservedAccount(ctx context.Context, accountReference string) error {
	path := "/api/v1/bank-transfer/reserved-accounts/reference/" + url.PathEscape(accountReference)

	envelope, statusCode, err := c.doAuthenticated(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}

	if statusCode == http.StatusNotFound {
		return nil
	}
	if statusCode == http.StatusBadRequest {
		message := strings.ToLower(envelope.ResponseMessage)
		if strings.Contains(message, "not found") || strings.Contains(message, "does not exist") {
			return nil
		}
		return gatewayError(envelope)
	}
	if statusCode >= http.StatusBadRequest || (statusCode == http.StatusOK && !envelope.RequestSuccessful && envelope.ResponseCode != "") {
		return gatewayError(envelope)
	}

	return nil
}

// GetReservedAccountTransactions lists the transfers received on a
// reserved account.
func (c *Client) GetReservedAccountTransactions(ctx context.Context, accountReference string) ([]models.AccountTransaction, error) {
	path := "/api/v1/bank-transfer/reserved-accounts/transactions?accountReference=" +
		url.QueryEscape(accountReference) + "&page=0&size=1000"

	envelope, _, err := c.doAuthenticated(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if !envelope.RequestSuccessful {
		return nil, gatewayError(envelope)
	}

	var body accountTransactionsResponseBody
	if err := json.Unmarshal(envelope.ResponseBody, &body); err != nil {
		return nil, fmt.Errorf("invalid account transactions response body: %w", err)
	}

	transactions := make([]models.AccountTransaction, 0, len(body.Content))
	for _, item := range body.Content {
		transactions = append(transactions, models.AccountTransaction{
			Amount:        item.Amount,
			Currency:      item.CurrencyCode,
			Status:        item.PaymentStatus,
			Reference:     item.PaymentReference,
			Date:          item.CompletedOn,
			Description:   item.PaymentDescription,
			PaymentMethod: item.PaymentMethod,
		})
	}

	return transactions, nil
}
