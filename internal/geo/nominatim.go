package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tranducthai/mcp-protocol-for-llm/internal/upstream"
)

const (
	nominatimBaseURL = "https://nominatim.openstreetmap.org"

	// Nominatim refuses larger result sets; oversized limits are capped
	// rather than rejected.
	maxSearchLimit = 50
)

// NominatimClient resolves free-text place queries against the Nominatim
// geocoding API.
type NominatimClient struct {
	baseURL string
	caller  *upstream.Client
}

// NewNominatimClient creates a Nominatim client sharing the given http.Client.
func NewNominatimClient(httpClient *http.Client, userAgent string) *NominatimClient {
	return &NominatimClient{
		baseURL: nominatimBaseURL,
		caller:  upstream.New("nominatim", userAgent, httpClient),
	}
}

// ClampSearchLimit forces a requested result limit into [1, maxSearchLimit].
func ClampSearchLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}

// buildSearchParams synthesizes the Nominatim search query: JSON output with
// structured address details and a clamped result limit.
func buildSearchParams(query string, limit int) url.Values {
	return url.Values{
		"q":              {query},
		"format":         {"json"},
		"addressdetails": {"1"},
		"limit":          {strconv.Itoa(ClampSearchLimit(limit))},
	}
}

// Search geocodes the query and returns normalized locations. An empty slice
// means the call succeeded but nothing matched.
func (c *NominatimClient) Search(ctx context.Context, query string, limit int) ([]Location, error) {
	u := fmt.Sprintf("%s/search?%s", c.baseURL, buildSearchParams(query, limit).Encode())

	var places []nominatimPlace
	if err := c.caller.GetJSON(ctx, u, "application/json", &places); err != nil {
		return nil, err
	}

	results := make([]Location, 0, len(places))
	for _, p := range places {
		results = append(results, normalizeLocation(p))
	}
	return results, nil
}

// nominatimPlace is the raw Nominatim record shape. Coordinates arrive as
// strings and place IDs as numbers.
type nominatimPlace struct {
	PlaceID     json.Number       `json:"place_id"`
	DisplayName string            `json:"display_name"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Lat         string            `json:"lat"`
	Lon         string            `json:"lon"`
	Address     map[string]string `json:"address"`
	Importance  float64           `json:"importance"`
}

func normalizeLocation(p nominatimPlace) Location {
	loc := Location{
		DisplayName: defaultString(p.DisplayName, "Unknown"),
		Name:        defaultString(p.Name, "Unknown"),
		Type:        defaultString(p.Type, "Unknown"),
		Coordinates: Coordinates{
			Latitude:  parseFloatDefault(p.Lat),
			Longitude: parseFloatDefault(p.Lon),
		},
		Address:    p.Address,
		Importance: p.Importance,
		PlaceID:    defaultString(p.PlaceID.String(), "Unknown"),
	}
	if loc.Address == nil {
		loc.Address = map[string]string{}
	}
	return loc
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func parseFloatDefault(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
