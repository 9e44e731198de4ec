package repository

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/partycurrency/backend/internal/pkg/models"
)

// PaymentRepo implements the payments.PaymentRepo interface on PostgreSQL
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepo creates a new payment repository instance
func NewPaymentRepo(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{
		cfg: cfg,
		db:  db,
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
