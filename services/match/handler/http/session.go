package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/musafir-app/musafir/internal/pkg/models"
	"github.com/musafir-app/musafir/internal/utils"
	"github.com/musafir-app/musafir/services/match"
)

// MatchHandler handles HTTP requests for travel intents and matchmaking.
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates the HTTP handler.
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// SubmitSession handles POST /session: declare or refresh a travel intent.
func (h *MatchHandler) SubmitSession(c echo.Context) error {
	var submission models.IntentSubmission
	if err := c.Bind(&submission); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	intent, err := h.matchUC.SubmitIntent(c.Request().Context(), &submission)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "travel intent stored", echo.Map{
		"session": intent,
	})
}

// ListSessions handles GET /session: the active intent snapshot.
func (h *MatchHandler) ListSessions(c echo.Context) error {
	intents, err := h.matchUC.ListIntents(c.Request().Context())
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", echo.Map{
		"sessions": intents,
		"count":    len(intents),
	})
}

// DeleteSession handles DELETE /session?ownerId=…: drop an intent.
func (h *MatchHandler) DeleteSession(c echo.Context) error {
	ownerID := c.QueryParam("ownerId")

	if err := h.matchUC.RemoveIntent(c.Request().Context(), ownerID); err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "travel intent removed", nil)
}
