package match

import (
	"context"

	"github.com/musafir-app/musafir/internal/pkg/models"
)

// MatchUC defines the interface for matchmaking business logic.
type MatchUC interface {
	// SubmitIntent validates a submission, stores the resulting intent
	// with a fresh TTL, and returns it.
	SubmitIntent(ctx context.Context, submission *models.IntentSubmission) (*models.TravelIntent, error)

	// GetIntent returns a traveller's live intent.
	GetIntent(ctx context.Context, ownerID string) (*models.TravelIntent, error)

	// ListIntents returns the active intent snapshot for diagnostics.
	ListIntents(ctx context.Context) ([]*models.TravelIntent, error)

	// RemoveIntent deletes a traveller's intent.
	RemoveIntent(ctx context.Context, ownerID string) error

	// MatchSolo ranks every other active solo traveller against the
	// caller's stored intent, best first. A nil weights pointer uses the
	// configured default blend.
	MatchSolo(ctx context.Context, ownerID string, weights *models.MatchWeights) ([]models.SoloMatch, error)

	// MatchGroups ranks all group listings against a caller-supplied
	// intent, best first.
	MatchGroups(ctx context.Context, submission *models.IntentSubmission, weights *models.MatchWeights) ([]models.GroupMatch, error)
}
