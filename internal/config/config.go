package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	Port             string
	Env              string
	DatabaseDSN      string
	JWTSecret        string
	JWTExpiry        time.Duration
	ProductKeySecret string
}

const (
	devJWTSecret     = "dev-secret-change-in-production"
	devProductSecret = "dev-product-secret-change-in-production"
)

func Load() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/homequest?parseTime=true"),
		JWTSecret:        getEnv("JWT_SECRET", devJWTSecret),
		JWTExpiry:        getDuration("JWT_EXPIRY", 24*time.Hour),
		ProductKeySecret: getEnv("PRODUCT_KEY_SECRET", devProductSecret),
	}

	if cfg.Env == "production" {
		if cfg.JWTSecret == devJWTSecret {
			log.Fatal("JWT_SECRET must be set in production environment")
		}
		if cfg.ProductKeySecret == devProductSecret {
			log.Fatal("PRODUCT_KEY_SECRET must be set in production environment")
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s value %q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
