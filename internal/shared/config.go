package shared

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string
	Storage     string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration

	JWTSecret string
	TokenTTL  time.Duration
	TaxRate   float64

	AuthRateRPS   float64
	AuthRateBurst int
	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Only enable it behind a proxy that overwrites those headers.
	TrustProxy bool

	CatalogFile      string
	CatalogSourceURL string
	CatalogSourceKey string
	SeedWorkers      int
}

// devSecret signs tokens when JWT_SECRET is unset in a dev environment.
// Other environments keep the secret empty and fail at startup.
const devSecret = "staycation-dev-secret"

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set in the environment win.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg(".env present but unreadable")
	}

	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":5000"),
		MetricsAddr: env("METRICS_ADDR", ""),
		Storage:     strings.ToLower(env("STORAGE", StorageMemory)),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/staycation?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,

		JWTSecret: env("JWT_SECRET", ""),
		TokenTTL:  time.Duration(atoi("TOKEN_TTL_HOURS", 24)) * time.Hour,
		TaxRate:   atof("TAX_RATE", 0.18),

		AuthRateRPS:   atof("AUTH_RATE_RPS", 5),
		AuthRateBurst: atoi("AUTH_RATE_BURST", 10),
		TrustProxy:    atob("TRUST_PROXY", false),

		CatalogFile:      env("CATALOG_FILE", "data/hotels.yaml"),
		CatalogSourceURL: env("CATALOG_SOURCE_URL", ""),
		CatalogSourceKey: env("CATALOG_SOURCE_KEY", ""),
		SeedWorkers:      atoi("SEED_WORKERS", 8),
	}
	if c.JWTSecret == "" && c.IsDev() {
		log.Warn().Msg("JWT_SECRET is empty; using the development secret")
		c.JWTSecret = devSecret
	}
	return c
}

// IsDev reports whether the app runs in a development environment.
func (c Config) IsDev() bool { return c.AppEnv == "dev" || c.AppEnv == "development" }

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("key", k).Str("value", v).Msg("invalid integer, using default")
	}
	return def
}

func atob(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Warn().Str("key", k).Str("value", v).Msg("invalid boolean, using default")
	}
	return def
}

func atof(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Warn().Str("key", k).Str("value", v).Msg("invalid number, using default")
	}
	return def
}
