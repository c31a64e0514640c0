package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port       string
	DBPath     string
	RedisAddr  string
	AdminToken string
	GameTTL    time.Duration
	FreeTurn   bool
}

func Load() *Config {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBPath:     getEnv("DB_PATH", "db.sqlite"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		AdminToken: os.Getenv("ADMIN_TOKEN"),
		FreeTurn:   os.Getenv("FREE_TURN") == "1",
	}

	hours, err := strconv.Atoi(getEnv("GAME_TTL_HOURS", "24"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	cfg.GameTTL = time.Duration(hours) * time.Hour

	if cfg.AdminToken == "" {
		log.Fatal("Missing critical environment variables")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
