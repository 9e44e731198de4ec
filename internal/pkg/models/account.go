package models

import "time"

// ReservedAccountRequest is the input for provisioning a virtual account for an event
type ReservedAccountRequest struct {
	EventID      string `json:"event_id"`
	CustomerName string `json:"customer_name"`
	BVN          string `json:"bvn"`
}

// ReservedAccountDetails describes a provisioned virtual bank account
type ReservedAccountDetails struct {
	AccountReference     string `json:"account_reference"`
	AccountName          string `json:"account_name"`
	CurrencyCode         string `json:"currency_code"`
	ReservationReference string `json:"reservation_reference"`
	ReservedAccountType  string `json:"reserved_account_type"`
	Status               string `json:"status"`
	BankCode             string `json:"bank_code"`
	BankName             string `json:"bank_name"`
	AccountNumber        string `json:"account_number"`
	CreatedOn            string `json:"created_on"`
}

// AccountTransaction is one inbound transfer recorded against a reserved account
type AccountTransaction struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	Reference     string  `json:"reference"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"payment_method"`
}

// ReservedAccountEvent is published when a virtual account is provisioned or released
type ReservedAccountEvent struct {
	AccountReference string    `json:"account_reference"`
	EventID          string    `json:"event_id"`
	UserID           string    `json:"user_id"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// SweepResult summarizes one reserved account sweep run
type SweepResult struct {
	Checked int `json:"checked"`
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
}
