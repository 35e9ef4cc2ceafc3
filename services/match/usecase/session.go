package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/musafir-app/musafir/internal/pkg/logger"
	"github.com/musafir-app/musafir/internal/pkg/models"
	"github.com/musafir-app/musafir/internal/utils"
	"github.com/musafir-app/musafir/services/match"
)

// SubmitIntent validates the submission, enriches it with coordinates when
// possible, and stores it with a fresh TTL. Resubmitting replaces the
// previous intent wholesale.
func (uc *MatchUC) SubmitIntent(ctx context.Context, submission *models.IntentSubmission) (*models.TravelIntent, error) {
	intent, err := uc.buildIntent(submission, true)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	intent.CreatedAt = now
	intent.LastRefreshedAt = now

	// A refresh keeps the original submission time.
	if existing, err := uc.intentRepo.Get(ctx, intent.OwnerID); err == nil && !existing.CreatedAt.IsZero() {
		intent.CreatedAt = existing.CreatedAt
	}

	uc.resolveCoordinates(ctx, submission, intent)

	if err := uc.intentRepo.Put(ctx, intent); err != nil {
		return nil, err
	}

	if err := uc.matchGW.PublishIntentSubmitted(ctx, intent); err != nil {
		logger.Warn("Failed to publish intent submitted event",
			logger.String("owner_id", intent.OwnerID),
			logger.Err(err))
	}

	return intent, nil
}

// GetIntent returns the traveller's live intent.
func (uc *MatchUC) GetIntent(ctx context.Context, ownerID string) (*models.TravelIntent, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: ownerId is required", match.ErrInvalidIntent)
	}
	return uc.intentRepo.Get(ctx, ownerID)
}

// ListIntents returns the active intent snapshot.
func (uc *MatchUC) ListIntents(ctx context.Context) ([]*models.TravelIntent, error) {
	return uc.intentRepo.ListActive(ctx)
}

// RemoveIntent deletes the traveller's intent. Removing an intent that is
// already gone succeeds.
func (uc *MatchUC) RemoveIntent(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("%w: ownerId is required", match.ErrInvalidIntent)
	}
	return uc.intentRepo.Delete(ctx, ownerID)
}

// buildIntent validates a raw submission and converts it into an intent.
// Validation failures carry ErrInvalidIntent with the offending field.
func (uc *MatchUC) buildIntent(submission *models.IntentSubmission, requireOwner bool) (*models.TravelIntent, error) {
	submission.Normalize()

	if requireOwner && submission.OwnerID == "" {
		return nil, fmt.Errorf("%w: ownerId is required", match.ErrInvalidIntent)
	}
	if submission.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", match.ErrInvalidIntent)
	}
	if submission.Budget <= 0 || math.IsNaN(submission.Budget) || math.IsInf(submission.Budget, 0) {
		return nil, fmt.Errorf("%w: budget must be a positive number", match.ErrInvalidIntent)
	}

	mode := models.TravelMode(submission.Mode)
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: mode must be solo or group", match.ErrInvalidIntent)
	}

	startDate, err := models.ParseDate(submission.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate: %v", match.ErrInvalidIntent, err)
	}
	endDate, err := models.ParseDate(submission.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate: %v", match.ErrInvalidIntent, err)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", match.ErrInvalidIntent)
	}

	return &models.TravelIntent{
		OwnerID:     submission.OwnerID,
		Destination: submission.Destination,
		Budget:      submission.Budget,
		StartDate:   startDate,
		EndDate:     endDate,
		Mode:        mode,
	}, nil
}

// resolveCoordinates fills in coordinates and geohash, preferring
// caller-supplied values and falling back to the geocoder. Geocoding is
// best effort: failures leave the intent without coordinates.
func (uc *MatchUC) resolveCoordinates(ctx context.Context, submission *models.IntentSubmission, intent *models.TravelIntent) {
	if submission.Latitude != nil && submission.Longitude != nil {
		intent.Coordinates = &models.Coordinates{
			Latitude:  *submission.Latitude,
			Longitude: *submission.Longitude,
		}
	} else {
		coords, err := uc.matchGW.ResolveDestination(ctx, intent.Destination)
		if err != nil {
			logger.Warn("Destination geocoding failed",
				logger.String("destination", intent.Destination),
				logger.Err(err))
		}
		intent.Coordinates = coords
	}

	if intent.Coordinates != nil {
		intent.Geohash = utils.EncodeCoordinates(*intent.Coordinates, utils.DestinationGeohashPrecision)
	}
}
