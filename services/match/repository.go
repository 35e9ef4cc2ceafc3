package match

import (
	"context"

	"github.com/musafir-app/musafir/internal/pkg/models"
)

// IntentRepo defines the interface for travel intent session storage.
type IntentRepo interface {
	// Put stores an intent wholesale under the owner's key and resets its
	// TTL. Last write wins.
	Put(ctx context.Context, intent *models.TravelIntent) error

	// Get returns the owner's live intent, ErrNoActiveIntent when absent.
	Get(ctx context.Context, ownerID string) (*models.TravelIntent, error)

	// ListActive returns a lazy snapshot of all live intents. Intents
	// expiring mid-scan may or may not appear.
	ListActive(ctx context.Context) ([]*models.TravelIntent, error)

	// Delete removes the owner's intent. Deleting an absent intent is not
	// an error.
	Delete(ctx context.Context, ownerID string) error

	// IncrDailyMatchCounter bumps the daily match-generation metric.
	IncrDailyMatchCounter(ctx context.Context) error
}

// GroupRepo defines the interface for the read-only group catalog.
type GroupRepo interface {
	ListListings(ctx context.Context) ([]*models.GroupListing, error)
}
