package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/veritasbank/veritas/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and returns a 500 response
func PanicRecoveryMiddleware(log *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					log.Error("Panic recovered",
						logger.Any("panic_value", r),
						logger.String("stack_trace", string(debug.Stack())),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()))

					err := c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"success": false,
						"error":   "Internal server error",
					})
					if err != nil {
						log.Error("Failed to send panic response", logger.Err(err))
					}
				}
			}()

			return next(c)
		}
	}
}

// RequestIDMiddleware assigns a request id header when the caller did not
// provide one
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			return next(c)
		}
	}
}
