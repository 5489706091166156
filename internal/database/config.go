package database

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"storefront/internal/pricing"
)

type Config struct {
	// DatabaseURL empty means the service runs in degraded mode: catalog
	// reads answer empty, checkout and reviews refuse to write.
	DatabaseURL string

	RedisURL      string
	RedisPassword string
	RedisDB       int

	ListenAddr      string
	SessionLifetime time.Duration

	FreeShippingThreshold int
	ShippingFee           int
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		RedisURL:              os.Getenv("REDIS_URL"),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		ListenAddr:            getEnv("LISTEN_ADDR", ":8080"),
		SessionLifetime:       time.Duration(getEnvAsInt("SESSION_LIFETIME_HOURS", 24)) * time.Hour,
		FreeShippingThreshold: getEnvAsInt("FREE_SHIPPING_THRESHOLD", pricing.DefaultFreeShippingThreshold),
		ShippingFee:           getEnvAsInt("SHIPPING_FEE", pricing.DefaultShippingFee),
	}, nil
}

func (c *Config) PricingRule() pricing.Rule {
	return pricing.Rule{
		FreeShippingThreshold: c.FreeShippingThreshold,
		ShippingFee:           c.ShippingFee,
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
