package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a payment transaction.
// A transaction is created pending and only moves to a terminal state
// through provider-verified settlement.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusSuccessful TransactionStatus = "successful"
	TransactionStatusFailed     TransactionStatus = "failed"
)

// IsTerminal reports whether the status permits no further transitions.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusSuccessful || s == TransactionStatusFailed
}

// Transaction represents one checkout attempt against the payment provider
type Transaction struct {
	ID                   string            `json:"id" db:"id"`
	PaymentReference     string            `json:"payment_reference" db:"payment_reference"`
	TransactionReference string            `json:"transaction_reference" db:"transaction_reference"`
	Amount               decimal.Decimal   `json:"amount" db:"amount"`
	CustomerName         string            `json:"customer_name" db:"customer_name"`
	CustomerEmail        string            `json:"customer_email" db:"customer_email"`
	EventID              string            `json:"event_id" db:"event_id"`
	UserID               string            `json:"user_id" db:"user_id"` // owner email
	PaymentDescription   string            `json:"payment_description" db:"payment_description"`
	CurrencyCode         string            `json:"currency_code" db:"currency_code"`
	ContractCode         string            `json:"contract_code" db:"contract_code"`
	Status               TransactionStatus `json:"status" db:"status"`
	Breakdown            string            `json:"breakdown" db:"breakdown"` // serialized fee map
	RedirectURL          string            `json:"redirect_url" db:"redirect_url"`
	CreatedAt            time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at" db:"updated_at"`
}

// FeeBreakdown is the itemized cost of a currency order
type FeeBreakdown struct {
	Printing       decimal.Decimal `json:"printing"`
	Delivery       decimal.Decimal `json:"delivery"`
	Reconciliation decimal.Decimal `json:"reconciliation"`
}

// Total returns the sum of all fee components
func (f FeeBreakdown) Total() decimal.Decimal {
	return f.Printing.Add(f.Delivery).Add(f.Reconciliation)
}

// TransactionQuote is returned when a transaction is created for an event
type TransactionQuote struct {
	Amount           FeeBreakdown    `json:"amount"`
	Total            decimal.Decimal `json:"total"`
	CurrencyCode     string          `json:"currency_code"`
	PaymentReference string          `json:"payment_reference"`
}

// CheckoutSession is the provider-issued checkout handle for a transaction
type CheckoutSession struct {
	CheckoutURL          string `json:"checkout_url"`
	TransactionReference string `json:"transaction_reference"`
}

// VerificationResult is the provider's answer to a transaction status query
type VerificationResult struct {
	Paid          bool   `json:"paid"`
	PaymentStatus string `json:"payment_status"`
}

// SettlementOutcome is what the callback flow reports back to the browser
// redirect: the provider reference and the terminal status reached.
type SettlementOutcome struct {
	TransactionReference string            `json:"transaction_reference"`
	Status               TransactionStatus `json:"status"`
}

// TransactionSettledEvent is published when a settlement reaches a terminal state
type TransactionSettledEvent struct {
	PaymentReference     string          `json:"payment_reference"`
	TransactionReference string          `json:"transaction_reference"`
	EventID              string          `json:"event_id"`
	UserID               string          `json:"user_id"`
	Amount               decimal.Decimal `json:"amount"`
	Status               string          `json:"status"`
	SettledAt            time.Time       `json:"settled_at"`
}
