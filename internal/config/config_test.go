package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"OPENWEATHER_API_KEY", "MCP_TRANSPORT", "HOST", "PORT", "HTTP_TIMEOUT", "PROBE_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Transport != TransportStdio {
		t.Fatalf("expected stdio default, got %q", cfg.Transport)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != "3001" {
		t.Fatalf("unexpected listen defaults: %s:%s", cfg.Host, cfg.Port)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout default: %v", cfg.HTTPTimeout)
	}
	if cfg.ProbeInterval != 5*time.Minute {
		t.Fatalf("unexpected probe interval default: %v", cfg.ProbeInterval)
	}
	if cfg.OpenWeatherAPIKey != "" {
		t.Fatalf("expected empty API key, got %q", cfg.OpenWeatherAPIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("MCP_TRANSPORT", TransportSSE)
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "8080")
	t.Setenv("HTTP_TIMEOUT", "10s")
	t.Setenv("PROBE_INTERVAL", "1m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "secret" || cfg.Transport != TransportSSE {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Host != "0.0.0.0" || cfg.Port != "8080" {
		t.Fatalf("unexpected listen config: %s:%s", cfg.Host, cfg.Port)
	}
	if cfg.HTTPTimeout != 10*time.Second || cfg.ProbeInterval != time.Minute {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
}

func TestLoadRejectsUnknownTransport(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "websocket")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "MCP_TRANSPORT") {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("HTTP_TIMEOUT", "soon")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "HTTP_TIMEOUT") {
		t.Fatalf("expected timeout error, got %v", err)
	}
}
