package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Storage drivers.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

type Config struct {
	Env                 string        `env:"ENV"                   envDefault:"dev"`  // Environment (dev, staging, prod)
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	StorageDriver string `env:"CREATOR_STORAGE_DRIVER" envDefault:"memory"` // memory, sqlite
	DatabaseFile  string `env:"CREATOR_DATABASE_FILE"  envDefault:"creatordesk.db"`
	SeedFile      string `env:"CREATOR_SEED_FILE"` // Optional: YAML seed replacing the built-in sample data

	Issuer        string        `env:"CREATOR_ISSUER"         envDefault:"creatordesk"`
	Audience      []string      `env:"CREATOR_AUDIENCE"       envDefault:"creatordesk" envSeparator:","`
	SessionSecret string        `env:"CREATOR_SESSION_SECRET"` // Optional: random per process when unset
	SessionTTL    time.Duration `env:"CREATOR_SESSION_TTL"    envDefault:"24h"`

	SessionIdleTTL       time.Duration `env:"CREATOR_SESSION_IDLE_TTL"  envDefault:"2h"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL"     envDefault:"10m"`
	GenerationDelay      time.Duration `env:"CREATOR_GENERATION_DELAY"  envDefault:"2s"`
	Locale               string        `env:"CREATOR_LOCALE"            envDefault:"en-US"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.StorageDriver) {
	case StorageMemory:
	case StorageSQLite:
		if c.DatabaseFile == "" {
			return fmt.Errorf("CREATOR_DATABASE_FILE is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}

	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("invalid port %d", c.Port)
	case c.SessionTTL <= 0:
		return fmt.Errorf("CREATOR_SESSION_TTL must be positive")
	case c.SessionIdleTTL <= 0:
		return fmt.Errorf("CREATOR_SESSION_IDLE_TTL must be positive")
	case c.HousekeepingInterval <= 0:
		return fmt.Errorf("HOUSEKEEPING_INTERVAL must be positive")
	case c.GenerationDelay < 0:
		return fmt.Errorf("CREATOR_GENERATION_DELAY must not be negative")
	}

	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("invalid CREATOR_LOCALE %q: %w", c.Locale, err)
		}
	}
	return nil
}
