package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/stoker/internal/state"
	"github.com/five82/stoker/internal/stokercloud"
)

//go:generate mockgen -destination=mock_status_fetcher_test.go -package=app github.com/five82/stoker/internal/app StatusFetcher

const (
	defaultPollInterval = 15 * time.Second
	maxBackoff          = 5 * time.Minute
)

// StatusFetcher is the part of stokercloud.Client the poller needs.
type StatusFetcher interface {
	FetchStatus(ctx context.Context, force bool) (*stokercloud.Status, error)
}

// StartPoller refreshes the store in the background until ctx is done.
// Consecutive failures stretch the wait with exponential backoff.
func StartPoller(ctx context.Context, store *state.Store, fetcher StatusFetcher, interval time.Duration, logger zerolog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go runPoller(ctx, store, fetcher, interval, logger)
}

func runPoller(ctx context.Context, store *state.Store, fetcher StatusFetcher, interval time.Duration, logger zerolog.Logger) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		_ = refresh(ctx, store, fetcher, false, logger)

		wait := interval
		if failures := store.Snapshot().ConsecutiveFailures; failures > 0 {
			wait = calculateBackoff(failures, interval)
		}
		timer.Reset(wait)
	}
}

// RefreshNow forces a fetch that bypasses the client cache.
func RefreshNow(ctx context.Context, store *state.Store, fetcher StatusFetcher, logger zerolog.Logger) error {
	return refresh(ctx, store, fetcher, true, logger)
}

func refresh(ctx context.Context, store *state.Store, fetcher StatusFetcher, force bool, logger zerolog.Logger) error {
	status, err := fetcher.FetchStatus(ctx, force)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		store.Update(nil, err)
		logger.Warn().
			Err(err).
			Bool("force", force).
			Int("consecutive_failures", store.Snapshot().ConsecutiveFailures).
			Msg("status poll failed")
		return err
	}
	store.Update(status, nil)
	logger.Debug().Bool("force", force).Msg("status updated")
	return nil
}

// calculateBackoff returns base * 2^failures, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff || backoff <= 0 {
			return maxBackoff
		}
	}
	return backoff
}
