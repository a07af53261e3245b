package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Cache    CacheConfig
	Import   ImportConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	UseMock         bool
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level string
}

// CacheConfig points at the Redis instance used for response caching.
// An empty Addr disables caching.
type CacheConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Prefix   string
}

// ImportConfig drives the periodic spreadsheet synchronization.
type ImportConfig struct {
	Enabled  bool
	Schedule string
	XLSXPath string
	CSVURL   string
	Timeout  time.Duration
}

const (
	defaultCacheTTL       = 15 * time.Second
	defaultCachePrefix    = "menuapp:"
	defaultImportSchedule = "@every 15s"
	defaultImportPath     = "admin/Menu.xlsx"
	defaultImportTimeout  = 30 * time.Second
)

// Load inspects the environment and builds a Config value. A .env file in the
// working directory is applied first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			":8080",
		),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			postgresURLFromParts(),
		),
		MaxIdleConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_IDLE_CONNS"), 10),
		MaxOpenConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_OPEN_CONNS"), 100),
		ConnMaxLifetime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_LIFETIME"), time.Hour),
		ConnMaxIdleTime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_IDLE_TIME"), 10*time.Minute),
		UseMock:         parseBoolWithDefault(os.Getenv("DATABASE_USE_MOCK"), false),
	}

	cfg.Logging = LoggingConfig{
		Level: firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
	}

	cfg.Cache = CacheConfig{
		Addr: firstNonEmpty(
			os.Getenv("REDIS_ADDR"),
			redisAddrFromHost(os.Getenv("REDIS_HOST")),
		),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       parseIntWithDefault(os.Getenv("REDIS_DB"), 0),
		TTL:      parseDurationWithDefault(os.Getenv("CACHE_TTL"), defaultCacheTTL),
		Prefix:   firstNonEmpty(os.Getenv("CACHE_PREFIX"), defaultCachePrefix),
	}

	cfg.Import = ImportConfig{
		Enabled:  parseBoolWithDefault(os.Getenv("IMPORT_ENABLED"), true),
		Schedule: firstNonEmpty(os.Getenv("IMPORT_SCHEDULE"), defaultImportSchedule),
		XLSXPath: firstNonEmpty(os.Getenv("IMPORT_XLSX_PATH"), defaultImportPath),
		CSVURL:   strings.TrimSpace(os.Getenv("IMPORT_CSV_URL")),
		Timeout:  parseDurationWithDefault(os.Getenv("IMPORT_TIMEOUT"), defaultImportTimeout),
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}
	if cfg.Cache.TTL <= 0 {
		return Config{}, fmt.Errorf("cache ttl must be positive")
	}

	return cfg, nil
}

// postgresURLFromParts assembles a DSN from the discrete POSTGRES_* variables
// used by the docker-compose setup. It returns "" when no host is configured.
func postgresURLFromParts() string {
	host := firstNonEmpty(os.Getenv("HOST_DB"), os.Getenv("POSTGRES_HOST"))
	if host == "" {
		return ""
	}
	port := firstNonEmpty(os.Getenv("POSTGRES_PORT"), os.Getenv("PORT_DB"), "5432")
	user := firstNonEmpty(os.Getenv("POSTGRES_USER"), "postgres")
	password := os.Getenv("POSTGRES_PASSWORD")
	name := firstNonEmpty(os.Getenv("POSTGRES_DB"), "postgres")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
}

func redisAddrFromHost(host string) string {
	host = strings.TrimSpace(host)
	if host == "" || strings.Contains(host, ":") {
		return host
	}
	return host + ":6379"
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseIntWithDefault(value string, def int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}
