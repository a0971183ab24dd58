// Package app builds the record sources selected by configuration and wires
// the optional snapshot cache in front of them.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/core/ports"
	mongodb "github.com/csecompass/catalog/internal/infrastructure/db/mongo"
	redisdb "github.com/csecompass/catalog/internal/infrastructure/db/redis"
	"github.com/csecompass/catalog/internal/infrastructure/supabase"
	"github.com/csecompass/catalog/internal/pkg/config"
)

// Sources groups the record sources and the dependencies checked for
// readiness.
type Sources struct {
	Resources ports.ResourceSource
	Roadmaps  ports.RoadmapSource
	// Pingers are the record source checks; the service is not ready
	// without them.
	Pingers map[string]ports.Pinger
	// OptionalPingers are checked but never make the service unready.
	OptionalPingers map[string]ports.Pinger
	// Cache is nil when the snapshot cache is disabled or unreachable.
	Cache *redisdb.SnapshotCache

	closers []func(context.Context) error
}

// Close releases every connection opened by Build.
func (s *Sources) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build connects the configured backend. An unreachable Redis disables the
// snapshot cache with a warning; an unreachable record source is an error.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Sources, error) {
	s := &Sources{
		Pingers:         make(map[string]ports.Pinger),
		OptionalPingers: make(map[string]ports.Pinger),
	}

	switch cfg.Backend {
	case config.BackendSupabase:
		client, err := supabase.New(supabase.Config{
			URL:     cfg.Supabase.URL,
			APIKey:  cfg.Supabase.AnonKey,
			Timeout: cfg.Supabase.Timeout,
		})
		if err != nil {
			return nil, err
		}
		s.Resources, s.Roadmaps = client, client
		s.Pingers["supabase"] = client

	case config.BackendMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Disconnect)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Warn().Err(err).Msg("failed to ensure mongo indexes")
		}
		s.Resources = mongodb.NewResourceRepository(db)
		s.Roadmaps = mongodb.NewRoadmapRepository(db)
		s.Pingers["mongodb"] = mongodb.NewPinger(db)

	default:
		return nil, fmt.Errorf("app: unknown backend %q", cfg.Backend)
	}

	if !cfg.Redis.Enabled {
		return s, nil
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("snapshot cache disabled")
		return s, nil
	}
	s.closers = append(s.closers, func(context.Context) error { return rdb.Close() })

	s.Cache = redisdb.NewSnapshotCache(rdb, cfg.Redis.TTL, log)
	s.Resources = s.Cache.Resources(s.Resources)
	s.Roadmaps = s.Cache.Roadmaps(s.Roadmaps)
	s.OptionalPingers["redis"] = s.Cache

	log.Info().
		Str("addr", cfg.Redis.Addr).
		Dur("ttl", cfg.Redis.TTL).
		Strs("collections", []string{domain.CollectionResources, domain.CollectionRoadmaps}).
		Msg("snapshot cache enabled")
	return s, nil
}
