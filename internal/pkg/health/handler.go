package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Info describes the running service for health probes.
type Info struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// RegisterHealthEndpoints wires the standard probe routes onto the server.
// All of them are liveness-style: they answer as long as the process runs,
// without touching downstream dependencies.
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string) {
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, Info{
			Service:   serviceName,
			Version:   version,
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	e.GET("/ping", handler)
	e.GET("/health", handler)
	e.GET("/healthz", handler)
	e.GET("/ready", handler)
}
