package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string
	ServiceName string

	APIKey         string // API key for authentication
	TrustedProxies []string

	// RecipeSource selects the primary template store. The bundled catalog
	// is always loaded as the fallback.
	RecipeSource string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	MigrateOnStart     bool
	SyncCatalogOnStart bool

	// RequireDatabase makes startup fail instead of falling back to the
	// bundled catalog when the recipe database is unreachable.
	RequireDatabase bool

	CacheSize       int
	CacheTTL        time.Duration
	SessionCapacity int
	SessionTTL      time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine; real environment variables may be set instead
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "bakewatt"),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		RecipeSource: strings.ToLower(getEnv("RECIPE_SOURCE", RecipeSourceStatic)),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "bakewatt"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		MigrateOnStart:     getEnvAsBool("MIGRATE_ON_START", true),
		SyncCatalogOnStart: getEnvAsBool("SYNC_CATALOG_ON_START", false),
		RequireDatabase:    getEnvAsBool("REQUIRE_DATABASE", false),

		CacheSize:       getEnvAsInt("TEMPLATE_CACHE_SIZE", DefaultCacheSize),
		CacheTTL:        getEnvAsDuration("TEMPLATE_CACHE_TTL", DefaultCacheTTL),
		SessionCapacity: getEnvAsInt("SESSION_CAPACITY", DefaultSessionCapacity),
		SessionTTL:      getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	if cfg.RecipeSource != RecipeSourceStatic && cfg.RecipeSource != RecipeSourcePostgres {
		return nil, fmt.Errorf(ErrMsgInvalidRecipeSource, RecipeSourceStatic, RecipeSourcePostgres, cfg.RecipeSource)
	}

	return cfg, nil
}

// UsesDatabase reports whether templates are served from postgres
func (c *Config) UsesDatabase() bool {
	return c.RecipeSource == RecipeSourcePostgres
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.Duration string such as "10m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
