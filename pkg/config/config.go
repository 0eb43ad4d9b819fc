package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogEmbedded = "embedded"
	CatalogDir      = "dir"
	CatalogPostgres = "postgres"
)

type Config struct {
	Env      string
	Port     string
	LogLevel string

	DatabaseURL   string
	DBMaxConns    int
	DBMinConns    int
	DBMaxIdleTime time.Duration
	ApplySchema   bool
	SchemaPath    string

	CatalogSource string
	CatalogDir    string

	AnalyticsDBPath string
	AnalyticsCap    int
	AdminKeyHash    string

	Chat struct {
		DictionaryPath string
		BaseDelay      time.Duration
		Jitter         time.Duration
		RatePerSecond  float64
		Burst          int
		GeminiAPIKey   string
		GeminiModel    string
	}

	SendGrid struct {
		APIKey      string
		SenderEmail string
		SenderName  string
	}

	CORS struct {
		AllowedOrigins   []string
		AllowCredentials bool
	}

	StaticDir string
	TLS       TLSSettings
}

// Load reads a .env file when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.Env = appEnv()
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.DBMaxConns = getEnvAsInt("DB_MAX_CONNS", 10)
	cfg.DBMinConns = getEnvAsInt("DB_MIN_CONNS", 2)
	cfg.DBMaxIdleTime = getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute)
	cfg.ApplySchema = getEnvAsBool("APPLY_SCHEMA_ON_START", true)
	cfg.SchemaPath = os.Getenv("SCHEMA_PATH")

	cfg.CatalogDir = os.Getenv("CATALOG_DIR")
	cfg.CatalogSource = strings.ToLower(getEnv("CATALOG_SOURCE", ""))
	if cfg.CatalogSource == "" {
		cfg.CatalogSource = CatalogEmbedded
		if cfg.CatalogDir != "" {
			cfg.CatalogSource = CatalogDir
		}
	}

	cfg.AnalyticsDBPath = os.Getenv("ANALYTICS_DB_PATH")
	cfg.AnalyticsCap = getEnvAsInt("ANALYTICS_MAX_EVENTS", 100)
	cfg.AdminKeyHash = os.Getenv("ADMIN_KEY_HASH")

	cfg.Chat.DictionaryPath = os.Getenv("CHAT_DICTIONARY_PATH")
	cfg.Chat.BaseDelay = getEnvAsDuration("CHAT_BASE_DELAY", 500*time.Millisecond)
	cfg.Chat.Jitter = getEnvAsDuration("CHAT_DELAY_JITTER", time.Second)
	cfg.Chat.RatePerSecond = getEnvAsFloat("CHAT_RATE_PER_SECOND", 1)
	cfg.Chat.Burst = getEnvAsInt("CHAT_RATE_BURST", 5)
	cfg.Chat.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Chat.GeminiModel = getEnv("GEMINI_MODEL", "gemini-2.0-flash")

	cfg.SendGrid.APIKey = os.Getenv("SENDGRID_API_KEY")
	cfg.SendGrid.SenderEmail = os.Getenv("SENDGRID_SENDER_EMAIL")
	cfg.SendGrid.SenderName = os.Getenv("SENDGRID_SENDER_NAME")

	cfg.CORS.AllowedOrigins = splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))
	cfg.CORS.AllowCredentials = strings.EqualFold(os.Getenv("CORS_ALLOW_CREDENTIALS"), "true")

	cfg.StaticDir = os.Getenv("STATIC_DIR")
	cfg.TLS = loadTLSSettings(cfg.Env)

	cfg.Port = os.Getenv("SERVER_PORT")
	if cfg.Port == "" {
		cfg.Port = os.Getenv("PORT")
	}
	if cfg.Port == "" {
		if cfg.TLS.EnableTLS {
			cfg.Port = "8443"
		} else {
			cfg.Port = "8080"
		}
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.CatalogSource {
	case CatalogEmbedded:
	case CatalogDir:
		if c.CatalogDir == "" {
			return fmt.Errorf("CATALOG_DIR is required when CATALOG_SOURCE=%s", CatalogDir)
		}
	case CatalogPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when CATALOG_SOURCE=%s", CatalogPostgres)
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	if c.AnalyticsCap <= 0 {
		return fmt.Errorf("ANALYTICS_MAX_EVENTS must be positive")
	}
	return c.TLS.Validate()
}

func appEnv() string {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	if env == "" {
		env = strings.ToLower(strings.TrimSpace(os.Getenv("ENV")))
	}
	if env == "" {
		env = "development"
	}
	return env
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return duration
}
