package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/partycurrency/backend/internal/pkg/apperrors"
	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/services/payments"
)

// CallbackHandler receives the provider's browser redirect after checkout
// and forwards the user to the frontend with the settlement result.
type CallbackHandler struct {
	paymentUC   payments.PaymentUC
	frontendURL string
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(paymentUC payments.PaymentUC, frontendURL string) *CallbackHandler {
	return &CallbackHandler{
		paymentUC:   paymentUC,
		frontendURL: frontendURL,
	}
}

// Callback settles the transaction named in the query string and redirects
// to the frontend event page. This endpoint always redirects: the browser
// lands on the frontend whatever the settlement result, with the outcome
// encoded in the query parameters. The provider's query parameter is only
// a lookup key; the settlement itself is verified server side.
func (h *CallbackHandler) Callback(c echo.Context) error {
	paymentReference := c.QueryParam("paymentReference")
	if paymentReference == "" {
		return h.redirect(c, url.Values{"error": {"missing_reference"}})
	}

	outcome, err := h.paymentUC.SettleTransaction(c.Request().Context(), paymentReference)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Callback for unknown payment reference",
				logger.String("payment_reference", paymentReference))
			return h.redirect(c, url.Values{"error": {"transaction_not_found"}})
		}

		logger.Error("Failed to settle transaction from callback",
			logger.String("payment_reference", paymentReference),
			logger.Err(err))
		return h.redirect(c, url.Values{"error": {"processing_failed"}})
	}

	params := url.Values{"transaction_reference": {outcome.TransactionReference}}
	if outcome.Status == models.TransactionStatusFailed {
		params.Set("status", "failed")
	}

	return h.redirect(c, params)
}

func (h *CallbackHandler) redirect(c echo.Context, params url.Values) error {
	return c.Redirect(http.StatusFound, h.frontendURL+"/manage-event?"+params.Encode())
}
