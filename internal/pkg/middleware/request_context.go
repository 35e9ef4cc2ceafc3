package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/musafir-app/musafir/internal/pkg/requestcontext"
)

// RequestContextMiddleware builds a RequestContext for every request and
// threads its values into the request's context.Context, so repositories
// and gateways can log with request and trace IDs.
func RequestContextMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("service_name", serviceName)

			reqCtx := requestcontext.FromEchoContext(c)
			ctx := requestcontext.WithRequestContext(c.Request().Context(), reqCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(echo.HeaderXRequestID, reqCtx.RequestID)
			c.Response().Header().Set("X-Trace-ID", reqCtx.TraceID)

			return next(c)
		}
	}
}
