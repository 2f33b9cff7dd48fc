package config

import (
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       slog.Level
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       parseLevel(getEnv("LOG_LEVEL", "info")),
		RateLimitRPS:   getPositiveFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getPositiveInt("RATE_LIMIT_BURST", 10),
	}
}

// Logger returns a text logger on stderr at the configured level.
func (c Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getPositiveInt falls back when the value is unset, malformed or not above zero.
func getPositiveInt(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		slog.Warn("invalid value, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return v
}

// getPositiveFloat falls back when the value is unset, malformed, not finite or not above zero.
func getPositiveFloat(key string, fallback float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		slog.Warn("invalid value, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return v
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		slog.Warn("unknown LOG_LEVEL, using info", "value", s)
		return slog.LevelInfo
	}
	return level
}
