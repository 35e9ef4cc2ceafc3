package match

import (
	"context"

	"github.com/musafir-app/musafir/internal/pkg/models"
)

// MatchGW defines the matchmaking gateway interface for outbound
// collaborators. All calls are best effort: failures are logged, never
// propagated to the traveller.
type MatchGW interface {
	// PublishIntentSubmitted announces a new or refreshed intent.
	PublishIntentSubmitted(ctx context.Context, intent *models.TravelIntent) error

	// PublishMatchesGenerated announces a completed ranking.
	PublishMatchesGenerated(ctx context.Context, event models.MatchesGeneratedEvent) error

	// ResolveDestination geocodes a destination name. Returns nil
	// coordinates when the geocoder is disabled or cannot resolve.
	ResolveDestination(ctx context.Context, destination string) (*models.Coordinates, error)
}
