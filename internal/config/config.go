package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Transport names the server can run.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// AppConfig holds all process settings. It is populated once at startup and
// treated as immutable afterwards; in particular the OpenWeatherMap key is
// read here and nowhere else.
type AppConfig struct {
	// OpenWeatherAPIKey gates the global weather provider. Empty means only
	// the US-restricted NWS tools can answer.
	OpenWeatherAPIKey string

	// Transport selects stdio (default) or sse.
	Transport string

	// Host and Port apply to the SSE transport only.
	Host string
	Port string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// ProbeInterval controls how often upstream reachability is checked.
	ProbeInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")

	cfg.Transport = getenvDefault("MCP_TRANSPORT", TransportStdio)
	if cfg.Transport != TransportStdio && cfg.Transport != TransportSSE {
		return nil, fmt.Errorf("invalid MCP_TRANSPORT %q: must be %q or %q", cfg.Transport, TransportStdio, TransportSSE)
	}

	cfg.Host = getenvDefault("HOST", "127.0.0.1")
	cfg.Port = getenvDefault("PORT", "3001")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	probeStr := getenvDefault("PROBE_INTERVAL", "5m")
	probeInterval, err := time.ParseDuration(probeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PROBE_INTERVAL: %w", err)
	}
	cfg.ProbeInterval = probeInterval

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
