package rankersvc

import (
	"context"
	"log"
	"time"

	"github.com/homespice/backend/internal/domain"
	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerConfig holds circuit breaker settings for the remote ranker
type BreakerConfig struct {
	FailureThreshold uint32
	Cooldown         time.Duration
}

// FallbackRanker tries the remote ranking service first and falls back to
// the local rule-based pipeline on any failure: transport error, timeout,
// non-success status or open circuit breaker. The fallback is unconditional;
// callers never see a remote failure.
type FallbackRanker struct {
	remote  domain.Ranker
	local   domain.Ranker
	breaker *gobreaker.CircuitBreaker[[]domain.MenuItem]
	debug   bool
}

// NewFallbackRanker wraps remote and local rankers. remote may be nil, in
// which case every call goes straight to the local pipeline.
func NewFallbackRanker(remote, local domain.Ranker, config BreakerConfig, debug bool) *FallbackRanker {
	threshold := config.FailureThreshold
	if threshold == 0 {
		threshold = 3
	}
	cooldown := config.Cooldown
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:    "ranking-service",
		Timeout: cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[RANKER] breaker %s: %s -> %s", name, from, to)
		},
	}

	return &FallbackRanker{
		remote:  remote,
		local:   local,
		breaker: gobreaker.NewCircuitBreaker[[]domain.MenuItem](settings),
		debug:   debug,
	}
}

// Rank implements domain.Ranker
func (f *FallbackRanker) Rank(ctx context.Context, req *domain.RankRequest) ([]domain.MenuItem, error) {
	if f.remote != nil {
		items, err := f.breaker.Execute(func() ([]domain.MenuItem, error) {
			return f.remote.Rank(ctx, req)
		})
		if err == nil {
			return items, nil
		}
		if f.debug {
			log.Printf("[RANKER] remote failed, using local pipeline: %v", err)
		}
	}

	return f.local.Rank(ctx, req)
}

// BreakerState reports the circuit breaker state for monitoring
func (f *FallbackRanker) BreakerState() string {
	return f.breaker.State().String()
}
