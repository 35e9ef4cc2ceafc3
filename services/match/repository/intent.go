package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/musafir-app/musafir/internal/pkg/constants"
	"github.com/musafir-app/musafir/internal/pkg/database"
	"github.com/musafir-app/musafir/internal/pkg/logger"
	"github.com/musafir-app/musafir/internal/pkg/models"
	"github.com/musafir-app/musafir/services/match"
)

const scanBatchSize = 100

// IntentRepo stores travel intents in Redis, one key per traveller, with
// the TTL carried by the key itself.
type IntentRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewIntentRepo creates the session store repository.
func NewIntentRepo(cfg *models.Config, redisClient *database.RedisClient) *IntentRepo {
	return &IntentRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// Put stores the intent wholesale and resets its TTL. Concurrent puts for
// the same owner resolve last-write-wins.
func (r *IntentRepo) Put(ctx context.Context, intent *models.TravelIntent) error {
	key := fmt.Sprintf(constants.KeyTravelIntent, intent.OwnerID)

	payload, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("failed to marshal intent: %w", err)
	}

	ttl := time.Duration(r.cfg.Match.SessionTTLSeconds) * time.Second
	if err := r.redisClient.Set(ctx, key, payload, ttl); err != nil {
		return storeErr(ctx, "storing intent", err)
	}
	return nil
}

// Get returns the owner's live intent, match.ErrNoActiveIntent when the key
// is absent or already expired.
func (r *IntentRepo) Get(ctx context.Context, ownerID string) (*models.TravelIntent, error) {
	key := fmt.Sprintf(constants.KeyTravelIntent, ownerID)

	raw, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, match.ErrNoActiveIntent
	}
	if err != nil {
		return nil, storeErr(ctx, "fetching intent", err)
	}

	var intent models.TravelIntent
	if err := json.Unmarshal([]byte(raw), &intent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intent for %s: %w", ownerID, err)
	}
	return &intent, nil
}

// ListActive walks the session keyspace with SCAN and fetches each intent.
// The snapshot is lazy: keys expiring mid-scan are skipped, keys created
// mid-scan may or may not appear. The walk is bounded by the configured
// scan timeout independent of the caller's deadline.
func (r *IntentRepo) ListActive(ctx context.Context) ([]*models.TravelIntent, error) {
	scanCtx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Match.ScanTimeoutSeconds)*time.Second)
	defer cancel()

	intents := make([]*models.TravelIntent, 0)
	var cursor uint64

	for {
		keys, next, err := r.redisClient.Scan(scanCtx, cursor, constants.KeyTravelIntentPattern, scanBatchSize)
		if err != nil {
			return nil, storeErr(ctx, "scanning intents", err)
		}

		for _, key := range keys {
			raw, err := r.redisClient.Get(scanCtx, key)
			if err == redis.Nil {
				// Expired between SCAN and GET.
				continue
			}
			if err != nil {
				return nil, storeErr(ctx, "fetching scanned intent", err)
			}

			var intent models.TravelIntent
			if err := json.Unmarshal([]byte(raw), &intent); err != nil {
				logger.Warn("Skipping undecodable intent",
					logger.String("key", key),
					logger.Err(err))
				continue
			}
			intents = append(intents, &intent)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return intents, nil
}

// Delete removes the owner's intent. Absent keys are a no-op.
func (r *IntentRepo) Delete(ctx context.Context, ownerID string) error {
	key := fmt.Sprintf(constants.KeyTravelIntent, ownerID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return storeErr(ctx, "deleting intent", err)
	}
	return nil
}

// IncrDailyMatchCounter bumps the rolling daily match metric, attaching a
// 24h expiry when the counter is first created.
func (r *IntentRepo) IncrDailyMatchCounter(ctx context.Context) error {
	count, err := r.redisClient.Incr(ctx, constants.KeyDailyMatchCounter)
	if err != nil {
		return storeErr(ctx, "incrementing match counter", err)
	}
	if count == 1 {
		if err := r.redisClient.Expire(ctx, constants.KeyDailyMatchCounter, 24*time.Hour); err != nil {
			return storeErr(ctx, "expiring match counter", err)
		}
	}
	return nil
}

// storeErr distinguishes a caller whose own deadline expired from a store
// that cannot be reached. The former propagates as-is so the request fails;
// the latter maps to ErrStoreUnavailable.
func storeErr(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
	return fmt.Errorf("%s: %w: %v", op, match.ErrStoreUnavailable, err)
}
