package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DSN         string
	JWTSecret   string
	JWTTTLHours int
	AppPort     string
	BcryptCost  int
	SeedOnBoot  bool
}

func Load() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := Config{
		DSN:         os.Getenv("MYSQL_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTLHours: envInt("JWT_TTL_HOURS", 168), // 7 days
		AppPort:     os.Getenv("APP_PORT"),
		BcryptCost:  envInt("BCRYPT_COST", bcrypt.DefaultCost),
		SeedOnBoot:  envBool("SEED_ON_BOOT", true),
	}

	if cfg.DSN == "" {
		log.Fatal("❌ MYSQL_DSN not set in environment")
	}
	if cfg.JWTSecret == "" {
		log.Println("⚠️ JWT_SECRET not set, using insecure dev default")
		cfg.JWTSecret = "dev-secret-only"
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
