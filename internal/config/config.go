package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port         string
	DatabaseDSN  string
	Env          string
	CORSOrigins  []string
	ReadTimeout  int // seconds
	WriteTimeout int
	IdleTimeout  int
	AutoMigrate  bool
}

// Load reads configuration from the environment with sensible defaults.
// Precedence: explicit env var > .env file (loaded by the caller) > default.
func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "rechnungs.db"),
		Env:          getEnv("APP_ENV", "development"),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "*")),
		ReadTimeout:  getInt("READ_TIMEOUT", 15),
		WriteTimeout: getInt("WRITE_TIMEOUT", 15),
		IdleTimeout:  getInt("IDLE_TIMEOUT", 60),
		AutoMigrate:  getBool("AUTO_MIGRATE", true),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
