package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musafir-app/musafir/internal/pkg/models"
	"github.com/musafir-app/musafir/services/match"
	"github.com/musafir-app/musafir/services/match/mocks"
)

func setupHandler(t *testing.T) (*MatchHandler, *mocks.MockMatchUC) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	matchUC := mocks.NewMockMatchUC(ctrl)
	return NewMatchHandler(matchUC), matchUC
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestSubmitSessionSuccess(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	body := `{"ownerId":"u1","destination":"Bali","budget":20000,"mode":"solo","startDate":"2026-07-01","endDate":"2026-07-10"}`
	req, rec := jsonRequest(http.MethodPost, "/session", body)
	c := e.NewContext(req, rec)

	stored := &models.TravelIntent{
		OwnerID:     "u1",
		Destination: "Bali",
		Budget:      20000,
		StartDate:   models.MustParseDate("2026-07-01"),
		EndDate:     models.MustParseDate("2026-07-10"),
		Mode:        models.TravelModeSolo,
	}
	matchUC.EXPECT().SubmitIntent(gomock.Any(), gomock.Any()).Return(stored, nil)

	require.NoError(t, h.SubmitSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"ownerId":"u1"`)
}

func TestSubmitSessionValidationError(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	body := `{"ownerId":"u1","destination":"Bali","budget":-5,"startDate":"2026-07-01","endDate":"2026-07-10"}`
	req, rec := jsonRequest(http.MethodPost, "/session", body)
	c := e.NewContext(req, rec)

	matchUC.EXPECT().SubmitIntent(gomock.Any(), gomock.Any()).
		Return(nil, match.ErrInvalidIntent)

	require.NoError(t, h.SubmitSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestSubmitSessionMalformedBody(t *testing.T) {
	h, _ := setupHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodPost, "/session", `{"ownerId":`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.SubmitSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitSessionStoreOutage(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	body := `{"ownerId":"u1","destination":"Bali","budget":20000,"startDate":"2026-07-01","endDate":"2026-07-10"}`
	req, rec := jsonRequest(http.MethodPost, "/session", body)
	c := e.NewContext(req, rec)

	matchUC.EXPECT().SubmitIntent(gomock.Any(), gomock.Any()).
		Return(nil, match.ErrStoreUnavailable)

	require.NoError(t, h.SubmitSession(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListSessions(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodGet, "/session", "")
	c := e.NewContext(req, rec)

	intents := []*models.TravelIntent{
		{OwnerID: "u1", Destination: "Bali"},
		{OwnerID: "u2", Destination: "Lombok"},
	}
	matchUC.EXPECT().ListIntents(gomock.Any()).Return(intents, nil)

	require.NoError(t, h.ListSessions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)
}

func TestDeleteSession(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodDelete, "/session?ownerId=u1", "")
	c := e.NewContext(req, rec)

	matchUC.EXPECT().RemoveIntent(gomock.Any(), "u1").Return(nil)

	require.NoError(t, h.DeleteSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteSessionMissingOwner(t *testing.T) {
	h, matchUC := setupHandler(t)
	e := echo.New()

	req, rec := jsonRequest(http.MethodDelete, "/session", "")
	c := e.NewContext(req, rec)

	matchUC.EXPECT().RemoveIntent(gomock.Any(), "").
		Return(match.ErrInvalidIntent)

	require.NoError(t, h.DeleteSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
