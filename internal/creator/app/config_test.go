package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, StorageMemory, cfg.StorageDriver)
	require.Equal(t, []string{"creatordesk"}, cfg.Audience)
	require.Equal(t, 2*time.Second, cfg.GenerationDelay)
	require.Equal(t, 2*time.Hour, cfg.SessionIdleTTL)
	require.Equal(t, "en-US", cfg.Locale)
	require.Empty(t, cfg.SessionSecret)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CREATOR_STORAGE_DRIVER", "sqlite")
	t.Setenv("CREATOR_DATABASE_FILE", "/tmp/creator.db")
	t.Setenv("CREATOR_AUDIENCE", "web,mobile")
	t.Setenv("CREATOR_GENERATION_DELAY", "0s")
	t.Setenv("CREATOR_SESSION_IDLE_TTL", "30m")
	t.Setenv("CREATOR_LOCALE", "de-DE")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, StorageSQLite, cfg.StorageDriver)
	require.Equal(t, "/tmp/creator.db", cfg.DatabaseFile)
	require.Equal(t, []string{"web", "mobile"}, cfg.Audience)
	require.Zero(t, cfg.GenerationDelay)
	require.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	require.Equal(t, "de-DE", cfg.Locale)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "CREATOR_STORAGE_DRIVER", "postgres"},
		{"malformed duration", "CREATOR_SESSION_TTL", "soon"},
		{"negative delay", "CREATOR_GENERATION_DELAY", "-1s"},
		{"port out of range", "PORT", "70000"},
		{"zero idle ttl", "CREATOR_SESSION_IDLE_TTL", "0s"},
		{"malformed locale", "CREATOR_LOCALE", "not a locale!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
