package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MetricsPort  string
	RedisURL     string
	CacheTTL     time.Duration
	SourceDelay  time.Duration
	FetchTimeout time.Duration
	SourceLimit  int
}

func Load() *Config {
	// .env at the project root, then the current directory.
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		Port:         getEnv("PORT", "5000"),
		MetricsPort:  getEnv("METRICS_PORT", "9090"),
		RedisURL:     os.Getenv("REDIS_URL"),
		CacheTTL:     time.Duration(getEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
		SourceDelay:  time.Duration(getEnvInt("SOURCE_DELAY_MS", 1000)) * time.Millisecond,
		FetchTimeout: time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 15)) * time.Second,
		SourceLimit:  getEnvInt("SOURCE_LIMIT", 5),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}
