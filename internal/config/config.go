package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Geofence Config
	ApproachingThresholdMeters float64       `env:"APPROACHING_THRESHOLD_METERS" envDefault:"200"`
	FenceCacheTTL              time.Duration `env:"FENCE_CACHE_TTL" envDefault:"30s"`

	// API Keys for admin authentication
	APIKeys []string `env:"API_KEYS"`
	// Секрет для проверки JWT токенов представителей (HS256)
	JWTSecret string `env:"JWT_SECRET"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:                os.Getenv("DATABASE_URL"),
		HTTPPort:                   getEnv("HTTP_PORT", "8080"),
		LogLevel:                   getEnv("LOG_LEVEL", "info"),
		RedisAddr:                  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                  os.Getenv("REDIS_PASSWORD"),
		RedisDB:                    getEnvAsInt("REDIS_DB", 0),
		WebhookURL:                 os.Getenv("WEBHOOK_URL"),
		WebhookSecret:              os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:             getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:          getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:           getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		ApproachingThresholdMeters: getEnvAsFloat("APPROACHING_THRESHOLD_METERS", 200),
		FenceCacheTTL:              getEnvAsDuration("FENCE_CACHE_TTL", 30*time.Second),
		JWTSecret:                  os.Getenv("JWT_SECRET"),
		APIKeys:                    splitList(os.Getenv("API_KEYS")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.ApproachingThresholdMeters <= 0 {
		return nil, fmt.Errorf("APPROACHING_THRESHOLD_METERS must be positive, got %v", cfg.ApproachingThresholdMeters)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// splitList разбивает список через запятую, пустые элементы отбрасываются
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
