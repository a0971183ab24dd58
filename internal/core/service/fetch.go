package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/pkg/metrics"
)

// loadPage drives one page view through Idle -> Loading -> Ready|Failed with
// a single call to fetch. Failures are logged and counted, never returned.
func loadPage[T any](ctx context.Context, log zerolog.Logger, collection string, fetch func(context.Context) ([]T, error)) *domain.Page[T] {
	page := domain.NewPage[T]()
	// A fresh page always accepts Begin.
	_ = page.Begin()

	start := time.Now()
	items, err := fetch(ctx)
	metrics.FetchDuration.WithLabelValues(collection).Observe(time.Since(start).Seconds())

	err = domain.NewFetchError(collection, err)
	if err != nil {
		metrics.FetchesTotal.WithLabelValues(collection, "error").Inc()
		log.Error().Err(err).Str("collection", collection).Msg("fetch failed")
	} else {
		metrics.FetchesTotal.WithLabelValues(collection, "ok").Inc()
		log.Debug().Str("collection", collection).Int("count", len(items)).Msg("fetched")
	}

	_ = page.Resolve(items, err)
	return page
}
