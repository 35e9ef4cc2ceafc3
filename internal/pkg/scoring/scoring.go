// Package scoring implements the pure compatibility scoring engine. It has
// no I/O and no dependency on the session store; callers hand it fully
// validated intents and listings.
package scoring

import (
	"strings"

	"github.com/musafir-app/musafir/internal/pkg/models"
)

// DestinationScore is 1.0 for an exact destination match after trimming
// surrounding whitespace, otherwise 0. Matching is case-sensitive: "Bali"
// and "bali" are different destinations.
func DestinationScore(caller, candidate string) float64 {
	if strings.TrimSpace(caller) == strings.TrimSpace(candidate) {
		return 1.0
	}
	return 0.0
}

// BudgetScore compares budgets relative to the caller. Differences within
// the tolerance are a perfect match; beyond it the score decays linearly,
// normalized by the caller's own budget, floored at 0. The caller's budget
// as denominator makes the score asymmetric: a big spender tolerates a
// given gap better than a shoestring traveller does.
func BudgetScore(callerBudget, candidateBudget float64) float64 {
	diff := callerBudget - candidateBudget
	if diff < 0 {
		diff = -diff
	}
	if diff <= models.BudgetTolerance {
		return 1.0
	}
	if callerBudget <= 0 {
		return 0.0
	}
	score := 1.0 - (diff-models.BudgetTolerance)/callerBudget
	if score < 0 {
		return 0.0
	}
	return score
}

// DateScore is the fraction of the caller's trip covered by the candidate's
// dates: inclusive overlap days divided by the caller's inclusive trip
// length, clamped to [0,1]. Disjoint ranges score 0; a candidate covering
// the whole trip scores 1.
func DateScore(callerStart, callerEnd, candidateStart, candidateEnd models.Date) float64 {
	tripDays := models.DaysInclusive(callerStart, callerEnd)
	if tripDays <= 0 {
		return 0.0
	}
	overlap := models.OverlapDays(callerStart, callerEnd, candidateStart, candidateEnd)
	score := float64(overlap) / float64(tripDays)
	if score > 1.0 {
		return 1.0
	}
	if score < 0 {
		return 0.0
	}
	return score
}

// Blend combines a breakdown into a total score using the given weights.
func Blend(b models.ScoreBreakdown, w models.MatchWeights) float64 {
	total := w.Destination*b.DestinationScore + w.Budget*b.BudgetScore + w.Dates*b.DateScore
	if total > 1.0 {
		return 1.0
	}
	if total < 0 {
		return 0.0
	}
	return total
}

// ScoreSoloToSolo scores a candidate traveller's intent against the
// caller's intent. The result is directional: budget and date sub-scores
// are normalized by the caller's side.
func ScoreSoloToSolo(caller, candidate *models.TravelIntent, w models.MatchWeights) models.MatchResult {
	breakdown := models.ScoreBreakdown{
		DestinationScore: DestinationScore(caller.Destination, candidate.Destination),
		BudgetScore:      BudgetScore(caller.Budget, candidate.Budget),
		DateScore:        DateScore(caller.StartDate, caller.EndDate, candidate.StartDate, candidate.EndDate),
	}
	return models.MatchResult{
		CandidateID: candidate.OwnerID,
		TotalScore:  Blend(breakdown, w),
		Breakdown:   breakdown,
	}
}

// ScoreSoloToGroup scores a group listing against the caller's intent using
// the same sub-score formulas as solo matching.
func ScoreSoloToGroup(caller *models.TravelIntent, group *models.GroupListing, w models.MatchWeights) models.MatchResult {
	breakdown := models.ScoreBreakdown{
		DestinationScore: DestinationScore(caller.Destination, group.Destination),
		BudgetScore:      BudgetScore(caller.Budget, group.Budget),
		DateScore:        DateScore(caller.StartDate, caller.EndDate, group.StartDate, group.EndDate),
	}
	return models.MatchResult{
		CandidateID: group.ID,
		TotalScore:  Blend(breakdown, w),
		Breakdown:   breakdown,
	}
}
