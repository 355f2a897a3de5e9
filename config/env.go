package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageRedis  = "redis"
	StorageMySQL  = "mysql"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"

	defaultPort       = "8080"
	defaultKeyPrefix  = "smartpos_"
	defaultSQLitePath = "smartpos.db"
)

// AppConfig is everything the process reads from the environment at startup.
type AppConfig struct {
	Port               string
	Environment        string
	CorsAllowedOrigins string

	StorageBackend   string
	StorageKeyPrefix string
	ConnectAttempts  int

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	SQLitePath string

	SeedDemoData bool

	RateLimitMaxRequests int64
	RateLimitWindow      time.Duration
}

func init() {
	// Load env from .env
	godotenv.Load()
}

// Load reads AppConfig from the environment, applying defaults.
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("API_PORT"))
	if port == "" {
		port = strings.TrimSpace(os.Getenv("PORT"))
	}
	if port == "" {
		port = defaultPort
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_BACKEND")))
	switch backend {
	case StorageRedis, StorageMySQL, StorageSQLite, StorageMemory:
	default:
		backend = StorageRedis
	}

	prefix, ok := os.LookupEnv("STORAGE_KEY_PREFIX")
	if !ok {
		prefix = defaultKeyPrefix
	}

	redisAddr := strings.TrimSpace(os.Getenv("REDIS_ADDRESS"))
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	sqlitePath := strings.TrimSpace(os.Getenv("SQLITE_PATH"))
	if sqlitePath == "" {
		sqlitePath = defaultSQLitePath
	}

	return AppConfig{
		Port:               port,
		Environment:        strings.TrimSpace(os.Getenv("GO_ENV")),
		CorsAllowedOrigins: strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")),

		StorageBackend:   backend,
		StorageKeyPrefix: prefix,
		ConnectAttempts:  intFromEnv("STORAGE_CONNECT_ATTEMPTS", 10),

		RedisAddress:  redisAddr,
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       intFromEnv("REDIS_DB", 0),

		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBName:     os.Getenv("DB_NAME"),
		SQLitePath: sqlitePath,

		SeedDemoData: boolFromEnv("SEED_DEMO_DATA"),

		RateLimitMaxRequests: int64(intFromEnv("RATE_LIMIT_MAX_REQUESTS", 600)),
		RateLimitWindow:      time.Duration(intFromEnv("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// retryDelay is the capped exponential back-off used by every connect loop.
func retryDelay(attempt int) time.Duration {
	sleep := time.Second * time.Duration(1<<min(attempt, 5))
	if sleep > 30*time.Second {
		sleep = 30 * time.Second
	}
	return sleep
}
