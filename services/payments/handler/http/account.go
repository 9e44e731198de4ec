package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/internal/utils"
	"github.com/partycurrency/backend/services/payments"
)

// AccountHandler handles HTTP requests for reserved virtual accounts
type AccountHandler struct {
	paymentUC payments.PaymentUC
}

// NewAccountHandler creates a new reserved account handler
func NewAccountHandler(paymentUC payments.PaymentUC) *AccountHandler {
	return &AccountHandler{paymentUC: paymentUC}
}

// CreateReservedAccount provisions a virtual bank account for one of the
// caller's events.
func (h *AccountHandler) CreateReservedAccount(c echo.Context) error {
	var req models.ReservedAccountRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for reserved account creation",
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.EventID == "" {
		return utils.BadRequestResponse(c, "event_id is required")
	}

	details, err := h.paymentUC.CreateReservedAccount(c.Request().Context(), &req, userIdentity(c))
	if err != nil {
		logger.Error("Failed to create reserved account",
			logger.String("event_id", req.EventID),
			logger.Err(err))
		return utils.ErrorFromTaxonomy(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Reserved account created successfully", details)
}

// DeleteReservedAccount releases a virtual account
func (h *AccountHandler) DeleteReservedAccount(c echo.Context) error {
	accountReference := c.Param("accountReference")
	if accountReference == "" {
		return utils.BadRequestResponse(c, "account reference is required")
	}

	identity := userIdentity(c)
	if err := h.paymentUC.DeleteReservedAccount(c.Request().Context(), accountReference, identity.Email); err != nil {
		logger.Error("Failed to delete reserved account",
			logger.String("account_reference", accountReference),
			logger.Err(err))
		return utils.ErrorFromTaxonomy(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reserved account deleted successfully", nil)
}

// GetActiveReservedAccount returns the caller's currently active account reference
func (h *AccountHandler) GetActiveReservedAccount(c echo.Context) error {
	identity := userIdentity(c)

	accountReference, err := h.paymentUC.GetActiveReservedAccount(c.Request().Context(), identity.Email)
	if err != nil {
		return utils.ErrorFromTaxonomy(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active reserved account retrieved", map[string]string{
		"account_reference": accountReference,
	})
}

// ListAccountTransactions returns the transfers received on a reserved account
func (h *AccountHandler) ListAccountTransactions(c echo.Context) error {
	accountReference := c.Param("accountReference")
	if accountReference == "" {
		return utils.BadRequestResponse(c, "account reference is required")
	}

	transactions, err := h.paymentUC.ListAccountTransactions(c.Request().Context(), accountReference)
	if err != nil {
		logger.Error("Failed to list account transactions",
			logger.String("account_reference", accountReference),
			logger.Err(err))
		return utils.ErrorFromTaxonomy(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account transactions retrieved", transactions)
}
