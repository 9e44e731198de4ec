package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/utils"
	"github.com/partycurrency/backend/services/payments"
)

// TransactionHandler handles HTTP requests for the payment transaction lifecycle
type TransactionHandler struct {
	paymentUC payments.PaymentUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(paymentUC payments.PaymentUC) *TransactionHandler {
	return &TransactionHandler{paymentUC: paymentUC}
}

type createTransactionRequest struct {
	EventID string `json:"event_id"`
}

type checkoutRequest struct {
	PaymentReference string `json:"payment_reference"`
}

// CreateTransaction quotes a currency order for an event and records a
// pending transaction.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for transaction creation",
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.EventID == "" {
		return utils.BadRequestResponse(c, "event_id is required")
	}

	quote, err := h.paymentUC.CreateTransaction(c.Request().Context(), req.EventID, userIdentity(c))
	if err != nil {
		logger.Error("Failed to create transaction",
			logger.String("event_id", req.EventID),
			logger.Err(err))
		return utils.ErrorFromTaxonomy(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", quote)
}

// Checkout initializes a recorded transaction with the payment provider and
// returns the hosted checkout URL.
func (h *TransactionHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for checkout",
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PaymentReference == "" {
		return utils.BadRequestResponse(c, "payment_reference is required")
	}

	session, err := h.paymentUC.Checkout(c.Request().Context(), req.PaymentReference)
	if err != nil {
		logger.Error("Failed to initialize checkout",
			logger.String("payment_reference", req.PaymentReference),
			logger.Err(err))
		return utils.ErrorFromTaxonomy(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Checkout session created", session)
}
