package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tranducthai/mcp-protocol-for-llm/internal/upstream"
)

const osrmBaseURL = "https://router.project-osrm.org"

// ValidProfiles is the closed set of transportation profiles OSRM accepts.
var ValidProfiles = []string{"driving", "walking", "cycling"}

// ErrInvalidProfile is returned when a requested profile is outside
// ValidProfiles; nothing is sent upstream in that case.
var ErrInvalidProfile = fmt.Errorf("invalid profile. Must be one of: %s", strings.Join(ValidProfiles, ", "))

// ErrRouting is returned when OSRM answers with a non-Ok routing code.
var ErrRouting = errors.New("routing error")

// OSRMClient computes routes between coordinate pairs.
type OSRMClient struct {
	baseURL string
	caller  *upstream.Client
}

// NewOSRMClient creates an OSRM client sharing the given http.Client.
func NewOSRMClient(httpClient *http.Client, userAgent string) *OSRMClient {
	return &OSRMClient{
		baseURL: osrmBaseURL,
		caller:  upstream.New("osrm", userAgent, httpClient),
	}
}

// IsValidProfile reports whether profile is in the accepted set.
func IsValidProfile(profile string) bool {
	for _, p := range ValidProfiles {
		if p == profile {
			return true
		}
	}
	return false
}

// buildRouteURL synthesizes the OSRM route request: coordinates go
// longitude-first per the OSRM convention, with full overview, per-step
// maneuvers, and GeoJSON geometry.
func buildRouteURL(baseURL, profile string, startLat, startLon, endLat, endLon float64) (string, error) {
	if !IsValidProfile(profile) {
		return "", ErrInvalidProfile
	}

	coords := fmt.Sprintf("%s,%s;%s,%s",
		formatCoord(startLon), formatCoord(startLat),
		formatCoord(endLon), formatCoord(endLat))

	params := url.Values{
		"overview":   {"full"},
		"steps":      {"true"},
		"geometries": {"geojson"},
	}
	return fmt.Sprintf("%s/route/v1/%s/%s?%s", baseURL, profile, coords, params.Encode()), nil
}

// Route fetches directions between two points. A zero-route answer is not an
// error: it yields the "no route" sentinel result.
func (c *OSRMClient) Route(ctx context.Context, profile string, startLat, startLon, endLat, endLon float64) (RouteResult, error) {
	u, err := buildRouteURL(c.baseURL, profile, startLat, startLon, endLat, endLon)
	if err != nil {
		return RouteResult{}, err
	}

	var payload osrmResponse
	if err := c.caller.GetJSON(ctx, u, "application/json", &payload); err != nil {
		return RouteResult{}, err
	}

	if payload.Code != "Ok" {
		msg := payload.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return RouteResult{}, fmt.Errorf("%w: %s", ErrRouting, msg)
	}

	return normalizeRoute(payload), nil
}

// Raw OSRM payload shapes.

type osrmResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Routes  []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Geometry json.RawMessage `json:"geometry"`
	Legs     []osrmLeg       `json:"legs"`
}

type osrmLeg struct {
	Distance float64    `json:"distance"`
	Duration float64    `json:"duration"`
	Steps    []osrmStep `json:"steps"`
}

type osrmStep struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
	Name     string  `json:"name"`
	Maneuver struct {
		Instruction string `json:"instruction"`
		Type        string `json:"type"`
	} `json:"maneuver"`
}

// normalizeRoute maps the first route into the canonical result. Route and
// leg totals are converted to kilometers/minutes; step values stay raw.
func normalizeRoute(payload osrmResponse) RouteResult {
	if len(payload.Routes) == 0 {
		return RouteResult{Error: "No routes found"}
	}

	route := payload.Routes[0]
	legs := make([]RouteLeg, 0, len(route.Legs))
	for _, leg := range route.Legs {
		steps := make([]RouteStep, 0, len(leg.Steps))
		for _, step := range leg.Steps {
			steps = append(steps, RouteStep{
				Instruction: defaultString(step.Maneuver.Instruction, "Continue"),
				Distance:    fmt.Sprintf("%s m", formatCoord(step.Distance)),
				Duration:    fmt.Sprintf("%s s", formatCoord(step.Duration)),
				Name:        step.Name,
				Type:        step.Maneuver.Type,
			})
		}
		legs = append(legs, RouteLeg{
			Distance: formatKilometers(leg.Distance),
			Duration: formatMinutes(leg.Duration),
			Steps:    steps,
		})
	}

	return RouteResult{
		Distance: formatKilometers(route.Distance),
		Duration: formatMinutes(route.Duration),
		Geometry: route.Geometry,
		Legs:     legs,
	}
}

func formatKilometers(meters float64) string {
	return fmt.Sprintf("%.2f km", meters/1000)
}

func formatMinutes(seconds float64) string {
	return fmt.Sprintf("%.1f minutes", seconds/60)
}
