package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musafir-app/musafir/internal/pkg/models"
	"github.com/musafir-app/musafir/services/match"
)

func validSubmission() *models.IntentSubmission {
	return &models.IntentSubmission{
		OwnerID:     "u1",
		Destination: "Bali",
		Budget:      20000,
		Mode:        "solo",
		StartDate:   "2026-07-01",
		EndDate:     "2026-07-10",
	}
}

func TestSubmitIntentStoresAndPublishes(t *testing.T) {
	f := setupUC(t)
	ctx := context.Background()

	var stored *models.TravelIntent
	f.intentRepo.EXPECT().Get(ctx, "u1").Return(nil, match.ErrNoActiveIntent)
	f.matchGW.EXPECT().ResolveDestination(ctx, "Bali").Return(nil, nil)
	f.intentRepo.EXPECT().Put(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, intent *models.TravelIntent) error {
			stored = intent
			return nil
		})
	f.matchGW.EXPECT().PublishIntentSubmitted(ctx, gomock.Any()).Return(nil)

	intent, err := f.uc.SubmitIntent(ctx, validSubmission())
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "u1", intent.OwnerID)
	assert.Equal(t, "Bali", intent.Destination)
	assert.Equal(t, models.TravelModeSolo, intent.Mode)
	assert.Equal(t, "2026-07-01", intent.StartDate.String())
	assert.False(t, intent.CreatedAt.IsZero())
	assert.Equal(t, intent.CreatedAt, intent.LastRefreshedAt)
}

func TestSubmitIntentDefaultsModeAndTrims(t *testing.T) {
	f := setupUC(t)
	ctx := context.Background()

	submission := validSubmission()
	submission.Destination = "  Bali  "
	submission.Mode = ""

	f.intentRepo.EXPECT().Get(ctx, "u1").Return(nil, match.ErrNoActiveIntent)
	f.matchGW.EXPECT().ResolveDestination(ctx, "Bali").Return(nil, nil)
	f.intentRepo.EXPECT().Put(ctx, gomock.Any()).Return(nil)
	f.matchGW.EXPECT().PublishIntentSubmitted(ctx, gomock.Any()).Return(nil)

	intent, err := f.uc.SubmitIntent(ctx, submission)
	require.NoError(t, err)
	assert.Equal(t, "Bali", intent.Destination)
	assert.Equal(t, models.TravelModeSolo, intent.Mode)
}

func TestSubmitIntentRefreshKeepsCreatedAt(t *testing.T) {
	f := setupUC(t)
	ctx := context.Background()

	firstSubmit := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	existing := soloIntent("u1", "Bali", 20000, "2026-07-01", "2026-07-10")
	existing.CreatedAt = firstSubmit

	f.intentRepo.EXPECT().Get(ctx, "u1").Return(existing, nil)
	f.matchGW.EXPECT().ResolveDestination(ctx, "Bali").Return(nil, nil)
	f.intentRepo.EXPECT().Put(ctx, gomock.Any()).Return(nil)
	f.matchGW.EXPECT().PublishIntentSubmitted(ctx, gomock.Any()).Return(nil)

	intent, err := f.uc.SubmitIntent(ctx, validSubmission())
	require.NoError(t, err)
	assert.Equal(t, firstSubmit, intent.CreatedAt)
	assert.True(t, intent.LastRefreshedAt.After(firstSubmit))
}

func TestSubmitIntentCallerCoordinatesWinOverGeocoder(t *testing.T) {
	f := setupUC(t)
	ctx := context.Background()

	lat, lon := -8.65, 115.22
	submission := validSubmission()
	submission.Latitude = &lat
	submission.Longitude = &lon

	f.intentRepo.EXPECT().Get(ctx, "u1").Return(nil, match.ErrNoActiveIntent)
	f.intentRepo.EXPECT().Put(ctx, gomock.Any()).Return(nil)
	f.matchGW.EXPECT().PublishIntentSubmitted(ctx, gomock.Any()).Return(nil)

	intent, err := f.uc.SubmitIntent(ctx, submission)
	require.NoError(t, err)
	require.NotNil(t, intent.Coordinates)
	assert.Equal(t, lat, intent.Coordinates.Latitude)
	assert.NotEmpty(t, intent.Geohash)
}

func TestSubmitIntentSurvivesGeocodeFailure(t *testing.T) {
	f := setupUC(t)
	ctx := context.Background()

	f.intentRepo.EXPECT().Get(ctx, "u1").Return(nil, match.ErrNoActiveIntent)
	f.matchGW.EXPECT().ResolveDestination(ctx, "Bali").
		Return(nil, context.DeadlineExceeded)
	f.intentRepo.EXPECT().Put(ctx, gomock.Any()).Return(nil)
	f.matchGW.EXPECT().PublishIntentSubmitted(ctx, gomock.Any()).Return(nil)

	intent, err := f.uc.SubmitIntent(ctx, validSubmission())
	require.NoError(t, err)
	assert.Nil(t, intent.Coordinates)
	assert.Empty(t, intent.Geohash)
}

func TestSubmitIntentValidation(t *testing.T) {
	f := setupUC(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.IntentSubmission)
	}{
		{"missing owner", func(s *models.IntentSubmission) { s.OwnerID = "" }},
		{"missing destination", func(s *models.IntentSubmission) { s.Destination = "   " }},
		{"zero budget", func(s *models.IntentSubmission) { s.Budget = 0 }},
		{"negative budget", func(s *models.IntentSubmission) { s.Budget = -100 }},
		{"bad mode", func(s *models.IntentSubmission) { s.Mode = "expedition" }},
		{"bad start date", func(s *models.IntentSubmission) { s.StartDate = "01/07/2026" }},
		{"bad end date", func(s *models.IntentSubmission) { s.EndDate = "someday" }},
		{"inverted range", func(s *models.IntentSubmission) {
			s.StartDate = "2026-07-10"
			s.EndDate = "2026-07-01"
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			submission := validSubmission()
			tc.mutate(submission)

			_, err := f.uc.SubmitIntent(ctx, submission)
			assert.ErrorIs(t, err, match.ErrInvalidIntent)
		})
	}
}

func TestSubmitIntentPropagatesStoreOutage(t *testing.T) {
	f := setupUC(t)
	ctx := context.Background()

	f.intentRepo.EXPECT().Get(ctx, "u1").Return(nil, match.ErrStoreUnavailable)
	f.matchGW.EXPECT().ResolveDestination(ctx, "Bali").Return(nil, nil)
	f.intentRepo.EXPECT().Put(ctx, gomock.Any()).Return(match.ErrStoreUnavailable)

	_, err := f.uc.SubmitIntent(ctx, validSubmission())
	assert.ErrorIs(t, err, match.ErrStoreUnavailable)
}

func TestGetIntent(t *testing.T) {
	f := setupUC(t)
	ctx := context.Background()

	existing := soloIntent("u1", "Bali", 20000, "2026-07-01", "2026-07-10")
	f.intentRepo.EXPECT().Get(ctx, "u1").Return(existing, nil)

	intent, err := f.uc.GetIntent(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, existing, intent)

	_, err = f.uc.GetIntent(ctx, "")
	assert.ErrorIs(t, err, match.ErrInvalidIntent)
}

func TestRemoveIntent(t *testing.T) {
	f := setupUC(t)
	ctx := context.Background()

	f.intentRepo.EXPECT().Delete(ctx, "u1").Return(nil)
	assert.NoError(t, f.uc.RemoveIntent(ctx, "u1"))

	assert.ErrorIs(t, f.uc.RemoveIntent(ctx, ""), match.ErrInvalidIntent)
}
