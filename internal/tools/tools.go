// Package tools wires the canonical geo/weather operations into MCP tools:
// argument validation, provider selection, the upstream call, normalization,
// and request-echo serialization. Every failure mode resolves to a
// descriptive message at this boundary; nothing propagates as a fault.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tranducthai/mcp-protocol-for-llm/internal/geo"
	"github.com/tranducthai/mcp-protocol-for-llm/internal/mcp"
	"github.com/tranducthai/mcp-protocol-for-llm/internal/weather"
)

var validate = validator.New()

// Facade holds the provider clients the tool handlers dispatch to.
type Facade struct {
	nominatim *geo.NominatimClient
	overpass  *geo.OverpassClient
	osrm      *geo.OSRMClient
	selector  *weather.Selector
}

// NewFacade creates the tool facade over the given provider clients.
func NewFacade(nominatim *geo.NominatimClient, overpass *geo.OverpassClient, osrm *geo.OSRMClient, selector *weather.Selector) *Facade {
	return &Facade{
		nominatim: nominatim,
		overpass:  overpass,
		osrm:      osrm,
		selector:  selector,
	}
}

// Registry returns the full tool set, ready to serve.
func (f *Facade) Registry() *mcp.Registry {
	r := mcp.NewRegistry()

	r.Register(mcp.Tool{
		Name:        "search_location",
		Description: "Search for locations by free-text query using OpenStreetMap Nominatim (e.g. 'Hanoi', 'Times Square New York').",
		InputSchema: objectSchema(map[string]any{
			"query": map[string]any{"type": "string", "description": "Search query"},
			"limit": map[string]any{"type": "integer", "description": "Maximum number of results (default 5, capped at 50)"},
		}, "query"),
		Handler: f.handleSearchLocation,
	})

	r.Register(mcp.Tool{
		Name:        "search_services",
		Description: "Search for services of a category near a point using the Overpass API (e.g. 'restaurant', 'hospital', 'atm', 'cafe').",
		InputSchema: objectSchema(map[string]any{
			"service_type": map[string]any{"type": "string", "description": "Category of service to search for"},
			"latitude":     map[string]any{"type": "number", "description": "Latitude of the search center"},
			"longitude":    map[string]any{"type": "number", "description": "Longitude of the search center"},
			"radius":       map[string]any{"type": "integer", "description": "Search radius in meters (default 1000)"},
		}, "service_type", "latitude", "longitude"),
		Handler: f.handleSearchServices,
	})

	r.Register(mcp.Tool{
		Name:        "get_directions",
		Description: "Get turn-by-turn directions between two points using OSRM.",
		InputSchema: objectSchema(map[string]any{
			"start_lat": map[string]any{"type": "number", "description": "Starting point latitude"},
			"start_lon": map[string]any{"type": "number", "description": "Starting point longitude"},
			"end_lat":   map[string]any{"type": "number", "description": "Destination latitude"},
			"end_lon":   map[string]any{"type": "number", "description": "Destination longitude"},
			"profile":   map[string]any{"type": "string", "description": "Transportation profile", "enum": []string{"driving", "walking", "cycling"}},
		}, "start_lat", "start_lon", "end_lat", "end_lon"),
		Handler: f.handleDirections,
	})

	r.Register(mcp.Tool{
		Name:        "get_alerts",
		Description: "Get active weather alerts for a US state (NWS).",
		InputSchema: objectSchema(map[string]any{
			"state": map[string]any{"type": "string", "description": "Two-letter US state code (e.g. CA, NY)"},
		}, "state"),
		Handler: f.handleAlerts,
	})

	r.Register(mcp.Tool{
		Name:        "get_forecast",
		Description: "Get the weather forecast for a location using NWS (US only).",
		InputSchema: objectSchema(map[string]any{
			"latitude":  map[string]any{"type": "number", "description": "Latitude of the location"},
			"longitude": map[string]any{"type": "number", "description": "Longitude of the location"},
		}, "latitude", "longitude"),
		Handler: f.handleNWSForecast,
	})

	r.Register(mcp.Tool{
		Name:        "get_current_weather",
		Description: "Get current weather for a city using OpenWeatherMap.",
		InputSchema: objectSchema(map[string]any{
			"city":  map[string]any{"type": "string", "description": "City name (e.g. 'London', 'New York')"},
			"units": map[string]any{"type": "string", "description": "Units of measurement", "enum": []string{"metric", "imperial"}},
		}, "city"),
		Handler: f.handleCurrentWeather,
	})

	r.Register(mcp.Tool{
		Name:        "get_weather_by_coordinates",
		Description: "Get current weather by coordinates using OpenWeatherMap.",
		InputSchema: objectSchema(map[string]any{
			"latitude":  map[string]any{"type": "number", "description": "Latitude of the location"},
			"longitude": map[string]any{"type": "number", "description": "Longitude of the location"},
			"units":     map[string]any{"type": "string", "description": "Units of measurement", "enum": []string{"metric", "imperial"}},
		}, "latitude", "longitude"),
		Handler: f.handleWeatherByCoordinates,
	})

	r.Register(mcp.Tool{
		Name:        "get_weather_forecast",
		Description: "Get a multi-day weather forecast for a city using OpenWeatherMap.",
		InputSchema: objectSchema(map[string]any{
			"city":  map[string]any{"type": "string", "description": "City name (e.g. 'London', 'New York')"},
			"days":  map[string]any{"type": "integer", "description": "Number of days (1-5, default 3)"},
			"units": map[string]any{"type": "string", "description": "Units of measurement", "enum": []string{"metric", "imperial"}},
		}, "city"),
		Handler: f.handleWeatherForecast,
	})

	return r
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Argument extraction from the decoded JSON arguments object. JSON numbers
// decode as float64; integers are truncated from that.

func stringArg(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}

func floatArg(args map[string]any, key string, def float64) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return def
}

func intArg(args map[string]any, key string, def int) int {
	if _, ok := args[key]; !ok {
		return def
	}
	return int(floatArg(args, key, float64(def)))
}

func marshalResult(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %v", err)
	}
	return string(out), nil
}

func invalidArgs(err error) error {
	return fmt.Errorf("invalid arguments: %v", err)
}
