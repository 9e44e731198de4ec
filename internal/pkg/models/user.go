package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the spend aggregate view of an account holder.
// Authentication and profile management live in a separate service;
// this service only reads identity claims and maintains the totals below.
type User struct {
	Email                   string          `json:"email" db:"email"`
	FirstName               string          `json:"first_name" db:"first_name"`
	LastName                string          `json:"last_name" db:"last_name"`
	TotalAmountSpent        decimal.Decimal `json:"total_amount_spent" db:"total_amount_spent"`
	VirtualAccountReference *string         `json:"virtual_account_reference" db:"virtual_account_reference"`
	CreatedAt               time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at" db:"updated_at"`
}

// UserIdentity is the subset of JWT claims the payment flows need
type UserIdentity struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName returns the customer display name used on provider requests
func (u UserIdentity) FullName() string {
	return u.FirstName + " " + u.LastName
}
