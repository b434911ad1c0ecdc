package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware creates request logging middleware for Echo
func ZapEchoMiddleware(log *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status

			if raw != "" {
				path = path + "?" + raw
			}

			userID := "anonymous"
			if v := c.Get("user_id"); v != nil {
				userID = fmt.Sprintf("%v", v)
			}

			fields := []Field{
				Int("status", statusCode),
				Duration("latency", latency),
				String("client_ip", c.RealIP()),
				String("method", c.Request().Method),
				String("path", path),
				String("user_id", userID),
				String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case statusCode >= 500:
				log.Error("Server error", fields...)
			case statusCode >= 400:
				log.Warn("Client error", fields...)
			default:
				log.Info("Request processed", fields...)
			}

			return err
		}
	}
}
