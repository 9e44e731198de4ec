package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/partycurrency/backend/internal/pkg/logger"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/internal/utils"
	"github.com/partycurrency/backend/services/payments"
)

// EventHandler handles HTTP requests for the event ledger
type EventHandler struct {
	paymentUC payments.PaymentUC
}

// NewEventHandler creates a new event handler
func NewEventHandler(paymentUC payments.PaymentUC) *EventHandler {
	return &EventHandler{paymentUC: paymentUC}
}

type createEventRequest struct {
	EventName        string    `json:"event_name"`
	EventDescription string    `json:"event_description"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	DeliveryAddress  string    `json:"delivery_address"`
}

// CreateEvent registers a new event owned by the caller
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for event creation",
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.EventName == "" {
		return utils.BadRequestResponse(c, "event_name is required")
	}
	if req.EndDate.Before(req.StartDate) {
		return utils.BadRequestResponse(c, "end_date must not be before start_date")
	}

	identity := userIdentity(c)
	event := &models.Event{
		EventName:        req.EventName,
		EventAuthor:      identity.Email,
		EventDescription: req.EventDescription,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		DeliveryAddress:  req.DeliveryAddress,
	}

	if err := h.paymentUC.CreateEvent(c.Request().Context(), event); err != nil {
		logger.Error("Failed to create event",
			logger.String("event_author", identity.Email),
			logger.Err(err))
		return utils.ErrorFromTaxonomy(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Event created successfully", event)
}

// GetEvent returns a single event by id
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return utils.BadRequestResponse(c, "event id is required")
	}

	event, err := h.paymentUC.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return utils.ErrorFromTaxonomy(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Event retrieved successfully", event)
}
