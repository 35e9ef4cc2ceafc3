package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musafir-app/musafir/internal/pkg/logger"
	"github.com/musafir-app/musafir/internal/pkg/models"
)

func newTestGeocoder(t *testing.T, handler http.Handler) *Geocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGeocoder(models.GeocodeConfig{
		Enabled:        true,
		BaseURL:        server.URL,
		TimeoutSeconds: 2,
	}, logger.NewNopLogger())
}

func TestGeocoderResolve(t *testing.T) {
	geocoder := newTestGeocoder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Bali", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"-8.4095","lon":"115.1889"}]`))
	}))

	coords, err := geocoder.Resolve(context.Background(), "Bali")
	require.NoError(t, err)
	assert.InDelta(t, -8.4095, coords.Latitude, 1e-6)
	assert.InDelta(t, 115.1889, coords.Longitude, 1e-6)
}

func TestGeocoderResolveNoResults(t *testing.T) {
	geocoder := newTestGeocoder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))

	_, err := geocoder.Resolve(context.Background(), "Atlantis")
	assert.Error(t, err)
}

func TestGeocoderRetriesTransientFailures(t *testing.T) {
	var calls int32
	geocoder := newTestGeocoder(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"-8.4095","lon":"115.1889"}]`))
	}))

	coords, err := geocoder.Resolve(context.Background(), "Bali")
	require.NoError(t, err)
	assert.NotNil(t, coords)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGatewayDisabledCollaborators(t *testing.T) {
	gw := NewMatchGW(&models.Config{}, nil, nil)
	ctx := context.Background()

	coords, err := gw.ResolveDestination(ctx, "Bali")
	assert.NoError(t, err)
	assert.Nil(t, coords)

	intent := &models.TravelIntent{OwnerID: "u1"}
	assert.NoError(t, gw.PublishIntentSubmitted(ctx, intent))
	assert.NoError(t, gw.PublishMatchesGenerated(ctx, models.MatchesGeneratedEvent{OwnerID: "u1"}))
}
