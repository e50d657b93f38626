package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/swelljoe/gweather/internal/weather"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "WEATHER_BASE_URL", "HTTP_TIMEOUT", "WEATHER_LANG", "WEATHER_UNIT"} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() err = %v; want nil", err)
		}
		if cfg.AppEnv != "dev" {
			t.Errorf("AppEnv = %q; want dev", cfg.AppEnv)
		}
		if cfg.LogLevel != slog.LevelInfo {
			t.Errorf("LogLevel = %v; want info", cfg.LogLevel)
		}
		if cfg.BaseURL != weather.DefaultBaseURL {
			t.Errorf("BaseURL = %q; want %q", cfg.BaseURL, weather.DefaultBaseURL)
		}
		if cfg.HTTPTimeout != 10*time.Second {
			t.Errorf("HTTPTimeout = %v; want 10s", cfg.HTTPTimeout)
		}
		if cfg.Language != "en" {
			t.Errorf("Language = %q; want en", cfg.Language)
		}
		if cfg.Unit != "" {
			t.Errorf("Unit = %q; want empty", cfg.Unit)
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "prod")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("WEATHER_BASE_URL", "http://localhost:9090/api")
		t.Setenv("HTTP_TIMEOUT", "2s")
		t.Setenv("WEATHER_LANG", "de")
		t.Setenv("WEATHER_UNIT", "c")

		cfg, err := LoadFromEnv()
		if err != nil {
			t.Fatalf("LoadFromEnv() err = %v; want nil", err)
		}
		if cfg.AppEnv != "prod" {
			t.Errorf("AppEnv = %q; want prod", cfg.AppEnv)
		}
		if cfg.LogLevel != slog.LevelDebug {
			t.Errorf("LogLevel = %v; want debug", cfg.LogLevel)
		}
		if cfg.BaseURL != "http://localhost:9090/api" {
			t.Errorf("BaseURL = %q; want the override", cfg.BaseURL)
		}
		if cfg.HTTPTimeout != 2*time.Second {
			t.Errorf("HTTPTimeout = %v; want 2s", cfg.HTTPTimeout)
		}
		if cfg.Language != "de" {
			t.Errorf("Language = %q; want de", cfg.Language)
		}
		if cfg.Unit != "c" {
			t.Errorf("Unit = %q; want c", cfg.Unit)
		}
	})

	t.Run("invalid APP_ENV", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "staging")
		if _, err := LoadFromEnv(); err == nil {
			t.Fatal("LoadFromEnv() err = nil; want invalid APP_ENV error")
		}
	})

	t.Run("invalid LOG_LEVEL", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_LEVEL", "verbose")
		if _, err := LoadFromEnv(); err == nil {
			t.Fatal("LoadFromEnv() err = nil; want invalid LOG_LEVEL error")
		}
	})

	t.Run("invalid HTTP_TIMEOUT", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HTTP_TIMEOUT", "soon")
		if _, err := LoadFromEnv(); err == nil {
			t.Fatal("LoadFromEnv() err = nil; want invalid HTTP_TIMEOUT error")
		}
	})
}

func Test_parseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "ERROR", want: slog.LevelError},
		{in: " info ", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if err != nil {
				t.Fatalf("parseLogLevel(%q) err = %v; want nil", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := parseLogLevel("trace"); err == nil {
		t.Error("parseLogLevel(\"trace\") err = nil; want error")
	}
}
