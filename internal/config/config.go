package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env         string
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	TokenTTL    time.Duration
	SwaggerHost string
}

// IsProduction reports whether the app runs in production mode.
// Request logging and error bodies are suppressed in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/raggnet?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		TokenTTL:    getEnvDuration("TOKEN_TTL", 24*time.Hour),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
