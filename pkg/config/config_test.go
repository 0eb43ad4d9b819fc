package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "ENV", "CATALOG_SOURCE", "CATALOG_DIR", "SERVER_PORT", "PORT", "ENABLE_TLS", "CORS_ALLOWED_ORIGINS", "CHAT_BASE_DELAY", "ANALYTICS_MAX_EVENTS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, CatalogEmbedded, cfg.CatalogSource)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, 500*time.Millisecond, cfg.Chat.BaseDelay)
	require.Equal(t, 100, cfg.AnalyticsCap)
}

func TestLoad_CatalogDirImpliesDirSource(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("CATALOG_DIR", "/srv/catalog")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, CatalogDir, cfg.CatalogSource)
}

func TestLoad_PostgresCatalogNeedsDatabase(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestSplitOrigins(t *testing.T) {
	require.Equal(t, []string{"https://a.dev", "https://b.dev"}, splitOrigins(" https://a.dev, ,https://b.dev "))
	require.Equal(t, []string{"*"}, splitOrigins(" , "))
}

func TestTLSSettings_Validate(t *testing.T) {
	require.Error(t, TLSSettings{Env: "production"}.Validate())
	require.Error(t, TLSSettings{Env: "production", EnableTLS: true}.Validate())
	require.NoError(t, TLSSettings{Env: "production", EnableTLS: true, CertPath: "c", KeyPath: "k"}.Validate())
	require.NoError(t, TLSSettings{Env: "development"}.Validate())
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "nope")
	t.Setenv("X_DUR", "soon")
	t.Setenv("X_BOOL", "maybe")

	require.Equal(t, 7, getEnvAsInt("X_INT", 7))
	require.Equal(t, time.Second, getEnvAsDuration("X_DUR", time.Second))
	require.True(t, getEnvAsBool("X_BOOL", true))
}
