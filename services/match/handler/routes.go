package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/musafir-app/musafir/internal/pkg/middleware"
	"github.com/musafir-app/musafir/internal/pkg/models"
	"github.com/musafir-app/musafir/services/match"
	httpHandler "github.com/musafir-app/musafir/services/match/handler/http"
)

// Handler wires the matchmaking HTTP routes.
type Handler struct {
	cfg         *models.Config
	httpHandler *httpHandler.MatchHandler
}

// NewHandler creates the route registrar.
func NewHandler(cfg *models.Config, matchUC match.MatchUC) *Handler {
	return &Handler{
		cfg:         cfg,
		httpHandler: httpHandler.NewMatchHandler(matchUC),
	}
}

// RegisterRoutes attaches all matchmaking routes. When a JWT secret is
// configured, the traveller-scoped routes require a bearer token; without
// one the service runs open, which is how it is deployed behind the
// gateway that terminates auth.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	guarded := e.Group("")
	if h.cfg.JWT.Secret != "" {
		guarded.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))
	}

	guarded.POST("/session", h.httpHandler.SubmitSession)
	guarded.GET("/session", h.httpHandler.ListSessions)
	guarded.DELETE("/session", h.httpHandler.DeleteSession)
	guarded.GET("/match-solo", h.httpHandler.MatchSolo)

	e.POST("/match-groups", h.httpHandler.MatchGroups)
}
