package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/musafir-app/musafir/internal/pkg/models"
	"github.com/musafir-app/musafir/internal/utils"
)

// MatchSolo handles GET /match-solo?ownerId=…: rank other active
// travellers against the caller's stored intent. The weight blend can be
// overridden per call with wDestination, wBudget and wDates, all three or
// none.
func (h *MatchHandler) MatchSolo(c echo.Context) error {
	ownerID := c.QueryParam("ownerId")
	if ownerID == "" {
		return utils.BadRequestResponse(c, "ownerId is required")
	}

	weights, err := parseWeightParams(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	matches, err := h.matchUC.MatchSolo(c.Request().Context(), ownerID, weights)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", echo.Map{
		"matches": matches,
		"count":   len(matches),
	})
}

// matchGroupsRequest is the POST /match-groups payload. The intent is
// supplied inline and never stored.
type matchGroupsRequest struct {
	models.IntentSubmission
	Weights *models.MatchWeights `json:"weights,omitempty"`
}

// MatchGroups handles POST /match-groups: rank published group listings
// against a caller-supplied intent.
func (h *MatchHandler) MatchGroups(c echo.Context) error {
	var req matchGroupsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if req.Weights != nil {
		if err := req.Weights.Validate(); err != nil {
			return utils.BadRequestResponse(c, err.Error())
		}
	}

	matches, err := h.matchUC.MatchGroups(c.Request().Context(), &req.IntentSubmission, req.Weights)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", echo.Map{
		"groups": matches,
		"count":  len(matches),
	})
}

// parseWeightParams reads the optional per-call weight override from query
// parameters. Returns nil when none are present.
func parseWeightParams(c echo.Context) (*models.MatchWeights, error) {
	wDest := c.QueryParam("wDestination")
	wBudget := c.QueryParam("wBudget")
	wDates := c.QueryParam("wDates")

	if wDest == "" && wBudget == "" && wDates == "" {
		return nil, nil
	}
	if wDest == "" || wBudget == "" || wDates == "" {
		return nil, errors.New("weight override requires wDestination, wBudget and wDates together")
	}

	dest, err := strconv.ParseFloat(wDest, 64)
	if err != nil {
		return nil, errors.New("wDestination must be a number")
	}
	budget, err := strconv.ParseFloat(wBudget, 64)
	if err != nil {
		return nil, errors.New("wBudget must be a number")
	}
	dates, err := strconv.ParseFloat(wDates, 64)
	if err != nil {
		return nil, errors.New("wDates must be a number")
	}

	weights := &models.MatchWeights{Destination: dest, Budget: budget, Dates: dates}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return weights, nil
}
