package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cart storage backends.
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	AppEnv  string
	AppPort string

	APIBaseURL         string
	HTTPClientTimeout  time.Duration
	OrderCompleteDelay time.Duration

	CartStorage string
	CartFileDir string

	RedisAddr     string
	RedisPassword string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	AdminJWTSecret string
	CORSOrigin     string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:  os.Getenv("APP_ENV"),
		AppPort: getEnv("APP_PORT", "8080"),

		APIBaseURL:         strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000"), "/"),
		HTTPClientTimeout:  getDuration("HTTP_CLIENT_TIMEOUT", 15*time.Second),
		OrderCompleteDelay: getDuration("ORDER_COMPLETE_DELAY", 10*time.Second),

		CartStorage: strings.ToLower(getEnv("CART_STORAGE", StorageFile)),
		CartFileDir: getEnv("CART_FILE_DIR", "./data"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "5432"),

		AdminJWTSecret: os.Getenv("ADMIN_JWT_SECRET"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}

	switch cfg.CartStorage {
	case StorageFile, StorageMemory, StorageRedis, StoragePostgres:
	default:
		cfg.CartStorage = StorageFile
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getDuration parses a Go duration and falls back on empty or invalid input.
// A zero or negative value is kept.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
