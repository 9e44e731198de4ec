package handler

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/partycurrency/backend/internal/pkg/database"
	"github.com/partycurrency/backend/internal/pkg/middleware"
	"github.com/partycurrency/backend/internal/pkg/models"
	"github.com/partycurrency/backend/services/payments/handler/http"
)

// Handler coordinates the HTTP handlers of the payments service
type Handler struct {
	transactionHandler *http.TransactionHandler
	callbackHandler    *http.CallbackHandler
	accountHandler     *http.AccountHandler
	eventHandler       *http.EventHandler
	cfg                *models.Config
	redisClient        *database.RedisClient
}

// NewHandler creates and initializes all handlers
func NewHandler(
	transactionHandler *http.TransactionHandler,
	callbackHandler *http.CallbackHandler,
	accountHandler *http.AccountHandler,
	eventHandler *http.EventHandler,
	cfg *models.Config,
	redisClient *database.RedisClient,
) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
		callbackHandler:    callbackHandler,
		accountHandler:     accountHandler,
		eventHandler:       eventHandler,
		cfg:                cfg,
		redisClient:        redisClient,
	}
}

// GetJWTMiddleware returns the configured JWT middleware. The identity
// claims the payment flows need (email, first/last name) are copied onto
// the echo context on success.
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}
			for _, key := range []string{"email", "first_name", "last_name"} {
				if value, exists := claims[key]; exists {
					c.Set(key, value)
				}
			}
			if email, exists := claims["email"]; exists {
				c.Set("user_id", email)
			}
		},
	})
}

// RegisterRoutes registers all routes of the payments service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// The provider redirects the customer's browser here after checkout;
	// no bearer token is available on that request.
	e.GET("/payments/callback", h.callbackHandler.Callback)

	protected := e.Group("", h.GetJWTMiddleware())

	rateLimited := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient.GetClient(),
		Key:         "ratelimit:payments",
		Limit:       30,
		Period:      time.Minute,
	})

	paymentGroup := protected.Group("/payments", rateLimited)
	paymentGroup.POST("/transactions", h.transactionHandler.CreateTransaction)
	paymentGroup.POST("/checkout", h.transactionHandler.Checkout)

	merchantGroup := protected.Group("/merchant")
	merchantGroup.POST("/reserved-accounts", h.accountHandler.CreateReservedAccount)
	merchantGroup.GET("/reserved-accounts/active", h.accountHandler.GetActiveReservedAccount)
	merchantGroup.DELETE("/reserved-accounts/:accountReference", h.accountHandler.DeleteReservedAccount)
	merchantGroup.GET("/reserved-accounts/:accountReference/transactions", h.accountHandler.ListAccountTransactions)

	eventGroup := protected.Group("/events")
	eventGroup.POST("", h.eventHandler.CreateEvent)
	eventGroup.GET("/:id", h.eventHandler.GetEvent)
}
