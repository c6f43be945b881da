package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	httpclient "github.com/piresc/ridebook/internal/pkg/http"
)

// ContextKeyRequestID is the echo context key of the request id
const ContextKeyRequestID = "request_id"

// RequestID reuses the caller's X-Request-ID or generates one, echoes it back and
// puts it on the request context so backend calls carry the same id
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(httpclient.RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Response().Header().Set(httpclient.RequestIDHeader, requestID)
			c.Set(ContextKeyRequestID, requestID)

			ctx := httpclient.ContextWithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
