package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/musafir-app/musafir/internal/pkg/logger"
	"github.com/musafir-app/musafir/internal/utils"
)

// PanicRecoveryMiddleware converts panics into 500 responses and logs the
// stack trace.
func PanicRecoveryMiddleware(l *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					l.Error("Panic recovered",
						logger.Any("panic", r),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())))

					err = utils.InternalServerErrorResponse(c, fmt.Sprintf("internal error: %v", r))
				}
			}()
			return next(c)
		}
	}
}
