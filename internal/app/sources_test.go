package app

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisdb "github.com/csecompass/catalog/internal/infrastructure/db/redis"
	"github.com/csecompass/catalog/internal/infrastructure/supabase"
	"github.com/csecompass/catalog/internal/pkg/config"
)

func supabaseConfig() *config.Config {
	return &config.Config{
		Backend: config.BackendSupabase,
		Supabase: config.SupabaseConfig{
			URL:     "https://example.supabase.co",
			AnonKey: "anon",
			Timeout: time.Second,
		},
	}
}

func TestBuild_SupabaseWithoutCache(t *testing.T) {
	s, err := Build(context.Background(), supabaseConfig(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	assert.IsType(t, &supabase.Client{}, s.Resources)
	assert.IsType(t, &supabase.Client{}, s.Roadmaps)
	assert.Nil(t, s.Cache)
	assert.Contains(t, s.Pingers, "supabase")
	assert.Empty(t, s.OptionalPingers)
}

func TestBuild_WrapsSourcesWithCache(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := supabaseConfig()
	cfg.Redis = config.RedisConfig{Enabled: true, Addr: mr.Addr(), TTL: time.Minute}

	s, err := Build(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	require.NotNil(t, s.Cache)
	assert.IsType(t, &redisdb.CachedResources{}, s.Resources)
	assert.IsType(t, &redisdb.CachedRoadmaps{}, s.Roadmaps)
	assert.Contains(t, s.OptionalPingers, "redis")
	assert.NotContains(t, s.Pingers, "redis")
}

func TestBuild_UnreachableRedisDisablesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := supabaseConfig()
	cfg.Redis = config.RedisConfig{Enabled: true, Addr: addr, TTL: time.Minute}

	s, err := Build(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Nil(t, s.Cache)
	assert.IsType(t, &supabase.Client{}, s.Resources)
}

func TestBuild_UnknownBackend(t *testing.T) {
	_, err := Build(context.Background(), &config.Config{Backend: "sqlite"}, zerolog.Nop())
	assert.ErrorContains(t, err, "unknown backend")
}
