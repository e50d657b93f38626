package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/swelljoe/gweather/internal/weather"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level

	// BaseURL is the weather feed endpoint, set via WEATHER_BASE_URL.
	BaseURL     string
	HTTPTimeout time.Duration

	// Language is forwarded to the feed verbatim; Unit is normalized by
	// weather.ParseUnit at the call site.
	Language string
	Unit     string
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	baseURL := strings.TrimSpace(os.Getenv("WEATHER_BASE_URL"))
	if baseURL == "" {
		baseURL = weather.DefaultBaseURL
	}

	timeoutStr := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT"))
	if timeoutStr == "" {
		timeoutStr = "10s"
	}
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", timeoutStr, err)
	}

	language := strings.TrimSpace(os.Getenv("WEATHER_LANG"))
	if language == "" {
		language = "en"
	}

	unit := strings.TrimSpace(os.Getenv("WEATHER_UNIT"))

	return Config{
		AppEnv:      appEnv,
		LogLevel:    level,
		BaseURL:     baseURL,
		HTTPTimeout: timeout,
		Language:    language,
		Unit:        unit,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
