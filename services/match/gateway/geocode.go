package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/musafir-app/musafir/internal/pkg/circuitbreaker"
	httpclient "github.com/musafir-app/musafir/internal/pkg/http"
	"github.com/musafir-app/musafir/internal/pkg/logger"
	"github.com/musafir-app/musafir/internal/pkg/models"
	"github.com/musafir-app/musafir/internal/pkg/retry"
)

// Geocoder resolves free-text destinations to coordinates through an
// external geocoding API. The API is slow and occasionally flaky, so calls
// run through retry with backoff and a circuit breaker.
type Geocoder struct {
	client  *httpclient.Client
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
	logger  *logger.ZapLogger
}

// NewGeocoder wires the geocoding client with its resilience stack.
func NewGeocoder(cfg models.GeocodeConfig, l *logger.ZapLogger) *Geocoder {
	retryCfg := retry.Config{
		MaxRetries:    2,
		BaseDelay:     100 * time.Millisecond,
		MaxDelay:      1 * time.Second,
		Multiplier:    2.0,
		Jitter:        true,
		RetryableFunc: retry.NetworkRetryableFunc(),
	}

	return &Geocoder{
		client:  httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second),
		retrier: retry.New(retryCfg, l),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("geocoder"), l),
		logger:  l,
	}
}

type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve returns coordinates for a destination name, or an error when the
// geocoder cannot resolve it. Callers treat failures as "no coordinates".
func (g *Geocoder) Resolve(ctx context.Context, destination string) (*models.Coordinates, error) {
	var results []geocodeResult

	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			query := url.Values{}
			query.Set("q", destination)
			query.Set("format", "json")
			query.Set("limit", "1")
			return g.client.GetJSON(ctx, "/search", query, &results)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", destination, err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no geocoding result for %q", destination)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in geocoding result: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in geocoding result: %w", err)
	}

	return &models.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// ResolveDestination geocodes through the gateway bundle. A disabled
// geocoder yields nil coordinates without error.
func (g *MatchGW) ResolveDestination(ctx context.Context, destination string) (*models.Coordinates, error) {
	if g.geocoder == nil {
		return nil, nil
	}
	return g.geocoder.Resolve(ctx, destination)
}
