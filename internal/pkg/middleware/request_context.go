package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/partycurrency/backend/internal/pkg/requestcontext"
)

// RequestContextMiddleware creates a middleware that attaches request context
// (request/trace IDs) to both the Echo context and the request's context.Context.
func RequestContextMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := requestcontext.FromEchoContext(c)
			reqCtx.ServiceName = serviceName

			c.Set("request_context", reqCtx)

			ctx := requestcontext.WithRequestContext(c.Request().Context(), reqCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set("X-Request-ID", reqCtx.RequestID)
			c.Response().Header().Set("X-Trace-ID", reqCtx.TraceID)

			return next(c)
		}
	}
}

// GetRequestContext extracts request context from Echo context
func GetRequestContext(c echo.Context) *requestcontext.RequestContext {
	if reqCtx, ok := c.Get("request_context").(*requestcontext.RequestContext); ok {
		return reqCtx
	}
	return nil
}
