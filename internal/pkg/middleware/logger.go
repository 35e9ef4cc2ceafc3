package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/musafir-app/musafir/internal/pkg/logger"
)

// RequestLoggerMiddleware emits one structured access-log line per request.
func RequestLoggerMiddleware(l *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			userID := ""
			if uid, ok := c.Get("user_id").(string); ok {
				userID = uid
			}

			l.LogHTTPRequest(
				c.Request().Method,
				c.Request().URL.Path,
				c.RealIP(),
				userID,
				c.Response().Header().Get(echo.HeaderXRequestID),
				c.Response().Status,
				time.Since(start),
				err,
			)

			return err
		}
	}
}
