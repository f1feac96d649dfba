package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tranducthai/mcp-protocol-for-llm/internal/upstream"
)

const overpassBaseURL = "https://overpass-api.de/api/interpreter"

// OverpassClient runs tag/radius queries against the Overpass API.
type OverpassClient struct {
	baseURL string
	caller  *upstream.Client
}

// NewOverpassClient creates an Overpass client sharing the given http.Client.
func NewOverpassClient(httpClient *http.Client, userAgent string) *OverpassClient {
	return &OverpassClient{
		baseURL: overpassBaseURL,
		caller:  upstream.New("overpass", userAgent, httpClient),
	}
}

// BuildAroundQuery synthesizes the Overpass QL statement for a
// category-around-point search. A category can be tagged on a node, a way,
// or a relation, so all three kinds are matched; `out center` makes Overpass
// attach a centroid to way and relation results, without which they would
// normalize to (0,0).
func BuildAroundQuery(category string, lat, lon float64, radius int) string {
	around := fmt.Sprintf("(around:%d,%s,%s)", radius, formatCoord(lat), formatCoord(lon))

	var b strings.Builder
	b.WriteString("[out:json][timeout:25];\n(\n")
	for _, kind := range []string{"node", "way", "relation"} {
		fmt.Fprintf(&b, "  %s[\"amenity\"=%q]%s;\n", kind, category, around)
	}
	b.WriteString(");\nout center;\n")
	return b.String()
}

// SearchNearby finds services of the given category within radius meters of
// the center point. An empty slice means nothing matched.
func (c *OverpassClient) SearchNearby(ctx context.Context, category string, lat, lon float64, radius int) ([]ServicePlace, error) {
	query := BuildAroundQuery(category, lat, lon, radius)

	var payload struct {
		Elements []overpassElement `json:"elements"`
	}
	if err := c.caller.PostFormJSON(ctx, c.baseURL, url.Values{"data": {query}}, &payload); err != nil {
		return nil, err
	}

	results := make([]ServicePlace, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		results = append(results, normalizeServicePlace(el))
	}
	return results, nil
}

// overpassElement is the raw Overpass record shape. Nodes carry lat/lon
// directly; ways and relations carry a center sub-record when `out center`
// was requested.
type overpassElement struct {
	ID   json.Number `json:"id"`
	Type string      `json:"type"`
	Lat  float64     `json:"lat"`
	Lon  float64     `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags Tags `json:"tags"`
}

// normalizeServicePlace maps one Overpass element into the canonical shape,
// selecting the coordinate source by element kind.
func normalizeServicePlace(el overpassElement) ServicePlace {
	var kind string
	var coords Coordinates

	switch el.Type {
	case "node":
		kind = KindPoint
		coords = Coordinates{Latitude: el.Lat, Longitude: el.Lon}
	case "way":
		kind = KindArea
		coords = centerCoords(el)
	case "relation":
		kind = KindRelation
		coords = centerCoords(el)
	default:
		kind = KindUnknown
	}

	tags := el.Tags
	if tags.values == nil {
		tags = NewTags()
	}

	return ServicePlace{
		ID:           defaultString(el.ID.String(), "Unknown"),
		Kind:         kind,
		Name:         tags.GetDefault("name", "Unnamed"),
		Coordinates:  coords,
		Amenity:      tags.GetDefault("amenity", "Unknown"),
		Shop:         tags.Get("shop"),
		Cuisine:      tags.Get("cuisine"),
		OpeningHours: tags.GetDefault("opening_hours", "Unknown"),
		Phone:        tags.Get("phone"),
		Website:      tags.Get("website"),
		Address: ServiceAddress{
			Street:      tags.Get("addr:street"),
			HouseNumber: tags.Get("addr:housenumber"),
			City:        tags.Get("addr:city"),
			Postcode:    tags.Get("addr:postcode"),
		},
		Tags: tags,
	}
}

func centerCoords(el overpassElement) Coordinates {
	if el.Center == nil {
		return Coordinates{}
	}
	return Coordinates{Latitude: el.Center.Lat, Longitude: el.Center.Lon}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
