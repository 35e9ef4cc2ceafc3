package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musafir-app/musafir/internal/pkg/models"
	"github.com/musafir-app/musafir/services/match"
)

func TestMatchSoloSuccess(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodGet, "/match-solo?ownerId=u1", "")
	c := e.NewContext(req, rec)

	matches := []models.SoloMatch{
		{
			Candidate: &models.TravelIntent{OwnerID: "u2", Destination: "Bali"},
			Score:     0.985,
			Breakdown: models.ScoreBreakdown{DestinationScore: 1, BudgetScore: 0.95, DateScore: 1},
		},
	}
	matchUC.EXPECT().MatchSolo(gomock.Any(), "u1", gomock.Nil()).Return(matches, nil)

	require.NoError(t, h.MatchSolo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
	assert.Contains(t, rec.Body.String(), `"budgetScore":0.95`)
}

func TestMatchSoloMissingOwner(t *testing.T) {
	h, _ := setupHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodGet, "/match-solo", "")
	c := e.NewContext(req, rec)

	require.NoError(t, h.MatchSolo(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchSoloGhostOwner(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodGet, "/match-solo?ownerId=ghost", "")
	c := e.NewContext(req, rec)

	matchUC.EXPECT().MatchSolo(gomock.Any(), "ghost", gomock.Nil()).
		Return(nil, match.ErrNoActiveIntent)

	require.NoError(t, h.MatchSolo(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMatchSoloWeightOverride(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodGet,
		"/match-solo?ownerId=u1&wDestination=0.5&wBudget=0.25&wDates=0.25", "")
	c := e.NewContext(req, rec)

	expected := &models.MatchWeights{Destination: 0.5, Budget: 0.25, Dates: 0.25}
	matchUC.EXPECT().MatchSolo(gomock.Any(), "u1", expected).Return([]models.SoloMatch{}, nil)

	require.NoError(t, h.MatchSolo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMatchSoloWeightOverrideValidation(t *testing.T) {
	h, _ := setupHandler(t)
	e := echo.New()

	cases := []struct {
		name  string
		query string
	}{
		{"partial override", "/match-solo?ownerId=u1&wDestination=0.5"},
		{"not a number", "/match-solo?ownerId=u1&wDestination=abc&wBudget=0.3&wDates=0.3"},
		{"does not sum to one", "/match-solo?ownerId=u1&wDestination=0.5&wBudget=0.5&wDates=0.5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, rec := jsonRequest(http.MethodGet, tc.query, "")
			c := e.NewContext(req, rec)

			require.NoError(t, h.MatchSolo(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestMatchGroupsSuccess(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	body := `{"destination":"Bali","budget":20000,"startDate":"2026-07-01","endDate":"2026-07-10"}`
	req, rec := jsonRequest(http.MethodPost, "/match-groups", body)
	c := e.NewContext(req, rec)

	matches := []models.GroupMatch{
		{
			Group:     &models.GroupListing{ID: "g1", Name: "Bali surf week", Destination: "Bali"},
			Score:     1.0,
			Breakdown: models.ScoreBreakdown{DestinationScore: 1, BudgetScore: 1, DateScore: 1},
		},
	}
	matchUC.EXPECT().MatchGroups(gomock.Any(), gomock.Any(), gomock.Nil()).Return(matches, nil)

	require.NoError(t, h.MatchGroups(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"groups"`)
	assert.Contains(t, rec.Body.String(), `"g1"`)
}

func TestMatchGroupsBodyWeights(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	body := `{"destination":"Bali","budget":20000,"startDate":"2026-07-01","endDate":"2026-07-10","weights":{"destination":0.6,"budget":0.2,"dates":0.2}}`
	req, rec := jsonRequest(http.MethodPost, "/match-groups", body)
	c := e.NewContext(req, rec)

	expected := &models.MatchWeights{Destination: 0.6, Budget: 0.2, Dates: 0.2}
	matchUC.EXPECT().MatchGroups(gomock.Any(), gomock.Any(), expected).
		Return([]models.GroupMatch{}, nil)

	require.NoError(t, h.MatchGroups(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMatchGroupsInvalidWeights(t *testing.T) {
	h, _ := setupHandler(t)
	e := echo.New()

	body := `{"destination":"Bali","budget":20000,"startDate":"2026-07-01","endDate":"2026-07-10","weights":{"destination":0.9,"budget":0.9,"dates":0.9}}`
	req, rec := jsonRequest(http.MethodPost, "/match-groups", body)
	c := e.NewContext(req, rec)

	require.NoError(t, h.MatchGroups(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchGroupsInvalidIntent(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	body := `{"destination":"","budget":20000,"startDate":"2026-07-01","endDate":"2026-07-10"}`
	req, rec := jsonRequest(http.MethodPost, "/match-groups", body)
	c := e.NewContext(req, rec)

	matchUC.EXPECT().MatchGroups(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, match.ErrInvalidIntent)

	require.NoError(t, h.MatchGroups(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
