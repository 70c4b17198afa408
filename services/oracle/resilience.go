// File: services/oracle/resilience.go
package oracle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"hotelvoice/models"

	"github.com/go-redis/redis/v8"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	callTimeout    = 5 * time.Second
	maxConcurrent  = 5
	cacheTTL       = 5 * time.Minute
	cacheKeyPrefix = "oracle:"
)

// Resilient wraps a SlotOracle with the safeguards the oracle boundary
// needs: a bounded timeout, a concurrency cap, a short-TTL response cache
// and a circuit breaker. None of these protect correctness; the caller
// always has the rule-based extractor as fallback.
type Resilient struct {
	inner   SlotOracle
	sem     *semaphore.Weighted
	breaker *gobreaker.CircuitBreaker
	cache   *redis.Client // nil disables caching
}

func NewResilient(inner SlotOracle, cache *redis.Client) *Resilient {
	settings := gobreaker.Settings{
		Name:    "slot-oracle",
		Timeout: 30 * time.Second, // cooldown before a half-open probe
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
	return &Resilient{
		inner:   inner,
		sem:     semaphore.NewWeighted(maxConcurrent),
		breaker: gobreaker.NewCircuitBreaker(settings),
		cache:   cache,
	}
}

func (r *Resilient) ExtractSlots(ctx context.Context, text string) (*models.BookingSlots, error) {
	key := cacheKeyPrefix + hashText(text)

	if r.cache != nil {
		if data, err := r.cache.Get(ctx, key).Result(); err == nil {
			var slots models.BookingSlots
			if json.Unmarshal([]byte(data), &slots) == nil {
				return &slots, nil
			}
		}
	}

	result, err := r.breaker.Execute(func() (any, error) {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer r.sem.Release(1)

		callCtx, cancel := context.WithTimeout(ctx, callTimeout)
		defer cancel()
		return r.inner.ExtractSlots(callCtx, text)
	})
	if err != nil {
		return nil, &models.UpstreamUnavailable{Upstream: "oracle", Err: err}
	}
	slots := result.(*models.BookingSlots)

	if r.cache != nil {
		if data, err := json.Marshal(slots); err == nil {
			if err := r.cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
				zap.L().Debug("oracle cache write failed", zap.Error(err))
			}
		}
	}
	return slots, nil
}

func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:16])
}
