package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tranducthai/mcp-protocol-for-llm/internal/config"
	"github.com/tranducthai/mcp-protocol-for-llm/internal/geo"
	"github.com/tranducthai/mcp-protocol-for-llm/internal/health"
	"github.com/tranducthai/mcp-protocol-for-llm/internal/mcp"
	"github.com/tranducthai/mcp-protocol-for-llm/internal/tools"
	"github.com/tranducthai/mcp-protocol-for-llm/internal/weather"
)

const (
	serverName    = "mcp-geo-weather"
	serverVersion = "1.0.0"
	userAgent     = "mcp-geo-weather/1.0"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.OpenWeatherAPIKey != "" {
		log.Println("OpenWeatherMap API key found - global weather features enabled")
	} else {
		log.Println("OpenWeatherMap API key not found - only US NWS features available")
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	nominatim := geo.NewNominatimClient(httpClient, userAgent)
	overpass := geo.NewOverpassClient(httpClient, userAgent)
	osrm := geo.NewOSRMClient(httpClient, userAgent)

	nws := weather.NewNWSClient(httpClient, userAgent)
	owm := weather.NewOpenWeatherClient(httpClient, userAgent, cfg.OpenWeatherAPIKey)
	selector := weather.NewSelector(nws, owm, cfg.OpenWeatherAPIKey != "")

	facade := tools.NewFacade(nominatim, overpass, osrm, selector)
	server := mcp.NewServer(serverName, serverVersion, facade.Registry())

	log.Printf("%s initialized (transport: %s)", serverName, cfg.Transport)

	switch cfg.Transport {
	case config.TransportStdio:
		runStdio(server)
	case config.TransportSSE:
		runSSE(cfg, server, httpClient)
	}
}

func runStdio(server *mcp.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mcp.ServeStdio(ctx, server, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		log.Fatalf("stdio server stopped: %v", err)
	}
}

func runSSE(cfg *config.AppConfig, server *mcp.Server, httpClient *http.Client) {
	// Upstream reachability probes backing the health endpoint.
	prober := health.New([]health.Target{
		{Name: "nominatim", URL: "https://nominatim.openstreetmap.org/status"},
		{Name: "overpass", URL: "https://overpass-api.de/api/status"},
		{Name: "osrm", URL: "https://router.project-osrm.org/nearest/v1/driving/0,0"},
		{Name: "nws", URL: "https://api.weather.gov"},
	}, cfg.ProbeInterval, httpClient)
	if err := prober.Start(); err != nil {
		log.Fatalf("failed to start health prober: %v", err)
	}
	defer prober.Stop()

	app := fiber.New(fiber.Config{
		AppName:               serverName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New(logger.Config{
		Output: os.Stderr,
	}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   serverName,
			"upstreams": prober.Status(),
		})
	})

	transport := mcp.NewSSETransport(server)
	transport.RegisterRoutes(app)

	addr := cfg.Host + ":" + cfg.Port
	go func() {
		log.Printf("SSE transport listening on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
