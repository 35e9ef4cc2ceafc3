package models

import (
	"fmt"
	"math"
	"time"
)

// BudgetTolerance is the absolute budget difference (in the platform's
// single currency) inside which two travellers are considered a perfect
// budget match.
const BudgetTolerance = 5000.0

// MatchWeights controls the blend of the three compatibility sub-scores.
// The weights must sum to 1.0.
type MatchWeights struct {
	Destination float64 `json:"destination"`
	Budget      float64 `json:"budget"`
	Dates       float64 `json:"dates"`
}

// DefaultMatchWeights returns the production weighting.
func DefaultMatchWeights() MatchWeights {
	return MatchWeights{Destination: 0.4, Budget: 0.3, Dates: 0.3}
}

// Validate checks that the weights are non-negative and sum to 1.0 within
// floating point tolerance.
func (w MatchWeights) Validate() error {
	if w.Destination < 0 || w.Budget < 0 || w.Dates < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", w)
	}
	if sum := w.Destination + w.Budget + w.Dates; math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("weights must sum to 1.0, got %.6f", sum)
	}
	return nil
}

// ScoreBreakdown carries the individual sub-scores behind a total score.
type ScoreBreakdown struct {
	DestinationScore float64 `json:"destinationScore"`
	BudgetScore      float64 `json:"budgetScore"`
	DateScore        float64 `json:"dateScore"`
}

// MatchResult is a single scored pairing, ephemeral and recomputed on
// every matching request.
type MatchResult struct {
	CandidateID string         `json:"candidateId"`
	TotalScore  float64        `json:"totalScore"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}

// SoloMatch pairs a candidate traveller's intent with its score against
// the caller.
type SoloMatch struct {
	Candidate *TravelIntent  `json:"user"`
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// GroupMatch pairs a group listing with its score against the caller's
// intent.
type GroupMatch struct {
	Group     *GroupListing  `json:"group"`
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// IntentSubmittedEvent is published when a traveller submits or refreshes
// an intent.
type IntentSubmittedEvent struct {
	EventID     string    `json:"eventId"`
	OwnerID     string    `json:"ownerId"`
	Destination string    `json:"destination"`
	Geohash     string    `json:"geohash,omitempty"`
	Mode        string    `json:"mode"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// MatchesGeneratedEvent is published after a ranking has been produced.
type MatchesGeneratedEvent struct {
	EventID     string    `json:"eventId"`
	OwnerID     string    `json:"ownerId"`
	Kind        string    `json:"kind"`
	Candidates  int       `json:"candidates"`
	TopScore    float64   `json:"topScore"`
	GeneratedAt time.Time `json:"generatedAt"`
}
