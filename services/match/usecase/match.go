package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/musafir-app/musafir/internal/pkg/logger"
	"github.com/musafir-app/musafir/internal/pkg/models"
	"github.com/musafir-app/musafir/internal/pkg/scoring"
	"github.com/musafir-app/musafir/services/match"
)

// MatchSolo ranks every other active traveller against the caller's stored
// intent, best first. Scoring is soft: low-compatibility candidates rank
// low instead of being filtered out. Ties keep enumeration order.
func (uc *MatchUC) MatchSolo(ctx context.Context, ownerID string, weights *models.MatchWeights) ([]models.SoloMatch, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: ownerId is required", match.ErrInvalidIntent)
	}

	w, err := uc.resolveWeights(weights)
	if err != nil {
		return nil, err
	}

	caller, err := uc.intentRepo.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.intentRepo.ListActive(ctx)
	if err != nil {
		// An unreachable store degrades to an empty ranking; an expired
		// caller deadline fails the request rather than silently
		// truncating it.
		if !errors.Is(err, match.ErrStoreUnavailable) {
			return nil, err
		}
		logger.Warn("Candidate enumeration failed, returning empty ranking",
			logger.String("owner_id", ownerID),
			logger.Err(err))
		candidates = nil
	}

	results := make([]models.SoloMatch, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.OwnerID == caller.OwnerID {
			continue
		}
		scored := scoring.ScoreSoloToSolo(caller, candidate, w)
		results = append(results, models.SoloMatch{
			Candidate: candidate,
			Score:     scored.TotalScore,
			Breakdown: scored.Breakdown,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	uc.recordRanking(ctx, ownerID, "solo", len(results), topSoloScore(results))

	return results, nil
}

// MatchGroups ranks all published group listings against a caller-supplied
// intent, best first. Nothing is written to the session store.
func (uc *MatchUC) MatchGroups(ctx context.Context, submission *models.IntentSubmission, weights *models.MatchWeights) ([]models.GroupMatch, error) {
	w, err := uc.resolveWeights(weights)
	if err != nil {
		return nil, err
	}

	caller, err := uc.buildIntent(submission, false)
	if err != nil {
		return nil, err
	}

	groups, err := uc.groupRepo.ListListings(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("listing groups: %w", ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", match.ErrStoreUnavailable, err)
	}

	results := make([]models.GroupMatch, 0, len(groups))
	for _, group := range groups {
		scored := scoring.ScoreSoloToGroup(caller, group, w)
		results = append(results, models.GroupMatch{
			Group:     group,
			Score:     scored.TotalScore,
			Breakdown: scored.Breakdown,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	uc.recordRanking(ctx, caller.OwnerID, "group", len(results), topGroupScore(results))

	return results, nil
}

// resolveWeights falls back to the configured blend when the caller
// supplied none. Invalid weights at this layer are a programming or
// configuration error; callers validate user-supplied overrides upfront.
func (uc *MatchUC) resolveWeights(weights *models.MatchWeights) (models.MatchWeights, error) {
	w := uc.cfg.Match.Weights()
	if weights != nil {
		w = *weights
	}
	if err := w.Validate(); err != nil {
		return models.MatchWeights{}, fmt.Errorf("%w: %v", match.ErrScoringInvariant, err)
	}
	return w, nil
}

// recordRanking bumps the daily counter and publishes the ranking event.
// Both are best effort.
func (uc *MatchUC) recordRanking(ctx context.Context, ownerID, kind string, candidates int, topScore float64) {
	if err := uc.intentRepo.IncrDailyMatchCounter(ctx); err != nil {
		logger.Warn("Failed to bump daily match counter", logger.Err(err))
	}

	event := models.MatchesGeneratedEvent{
		OwnerID:    ownerID,
		Kind:       kind,
		Candidates: candidates,
		TopScore:   topScore,
	}
	if err := uc.matchGW.PublishMatchesGenerated(ctx, event); err != nil {
		logger.Warn("Failed to publish matches generated event",
			logger.String("owner_id", ownerID),
			logger.Err(err))
	}
}

func topSoloScore(results []models.SoloMatch) float64 {
	if len(results) == 0 {
		return 0
	}
	return results[0].Score
}

func topGroupScore(results []models.GroupMatch) float64 {
	if len(results) == 0 {
		return 0
	}
	return results[0].Score
}
