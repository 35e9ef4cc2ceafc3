package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/musafir-app/musafir/internal/pkg/constants"
	"github.com/musafir-app/musafir/internal/pkg/models"
)

// PublishIntentSubmitted announces a new or refreshed travel intent on the
// event bus. A disabled bus is a silent no-op.
func (g *MatchGW) PublishIntentSubmitted(ctx context.Context, intent *models.TravelIntent) error {
	if g.producer == nil {
		return nil
	}

	event := models.IntentSubmittedEvent{
		EventID:     uuid.New().String(),
		OwnerID:     intent.OwnerID,
		Destination: intent.Destination,
		Geohash:     intent.Geohash,
		Mode:        string(intent.Mode),
		SubmittedAt: time.Now().UTC(),
	}

	return g.producer.Publish(constants.TopicIntentSubmitted, event)
}

// PublishMatchesGenerated announces a completed ranking on the event bus.
func (g *MatchGW) PublishMatchesGenerated(ctx context.Context, event models.MatchesGeneratedEvent) error {
	if g.producer == nil {
		return nil
	}

	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	if event.GeneratedAt.IsZero() {
		event.GeneratedAt = time.Now().UTC()
	}

	return g.producer.Publish(constants.TopicMatchesGenerated, event)
}
