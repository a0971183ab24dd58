package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	BackendSupabase = "supabase"
	BackendMongo    = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// Backend selects the record source: "supabase" or "mongo".
	Backend string `env:"SOURCE_BACKEND, default=supabase"`

	Supabase SupabaseConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type SupabaseConfig struct {
	URL     string        `env:"SUPABASE_URL"`
	AnonKey string        `env:"SUPABASE_ANON_KEY"`
	Timeout time.Duration `env:"SUPABASE_TIMEOUT, default=10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cse_compass"`
}

type RedisConfig struct {
	// Enabled turns on the list snapshot cache in front of the record source.
	Enabled bool          `env:"REDIS_ENABLED, default=false"`
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	TTL     time.Duration `env:"REDIS_TTL,     default=60s"`
}

// IsDevelopment reports whether the service runs with developer defaults
// (pretty logs, verbose errors).
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Validate checks cross-field requirements envconfig cannot express.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSupabase:
		if c.Supabase.URL == "" || c.Supabase.AnonKey == "" {
			return fmt.Errorf("config: SUPABASE_URL and SUPABASE_ANON_KEY are required for the %q backend", BackendSupabase)
		}
	case BackendMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("config: MONGO_URI is required for the %q backend", BackendMongo)
		}
	default:
		return fmt.Errorf("config: unknown SOURCE_BACKEND %q", c.Backend)
	}
	return nil
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return process(ctx, nil)
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	c := &envconfig.Config{Target: &cfg}
	if lookuper != nil {
		c.Lookuper = lookuper
	}
	if err := envconfig.ProcessWith(ctx, c); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
