// Package geo talks to the OpenStreetMap family of services (Nominatim
// geocoding, Overpass tag queries, OSRM routing) and normalizes their
// heterogeneous payloads into one canonical entity set. Every normalizer is
// total: absent source fields become documented defaults, never errors.
package geo

import "encoding/json"

// Coordinates is a latitude/longitude pair. Zero values mean the source
// supplied no position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Element kinds a service place can have. OSM nodes map to points and ways
// to areas; anything unrecognized stays "Unknown".
const (
	KindPoint    = "point"
	KindArea     = "area"
	KindRelation = "relation"
	KindUnknown  = "Unknown"
)

// Location is a normalized geocoding result.
type Location struct {
	DisplayName string            `json:"display_name"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Coordinates Coordinates       `json:"coordinates"`
	Address     map[string]string `json:"address"`
	Importance  float64           `json:"importance"`
	PlaceID     string            `json:"place_id"`
}

// ServiceAddress is the structured subset of an element's address tags.
type ServiceAddress struct {
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	City        string `json:"city"`
	Postcode    string `json:"postcode"`
}

// ServicePlace is a normalized nearby-service result. Tags carries the full
// raw tag mapping for traceability alongside the projected typed fields.
type ServicePlace struct {
	ID           string         `json:"id"`
	Kind         string         `json:"kind"`
	Name         string         `json:"name"`
	Coordinates  Coordinates    `json:"coordinates"`
	Amenity      string         `json:"amenity"`
	Shop         string         `json:"shop"`
	Cuisine      string         `json:"cuisine"`
	OpeningHours string         `json:"opening_hours"`
	Phone        string         `json:"phone"`
	Website      string         `json:"website"`
	Address      ServiceAddress `json:"address"`
	Tags         Tags           `json:"tags"`
}

// RouteStep is a single maneuver within a leg. Distance and duration stay in
// raw meters and seconds; only the route and leg totals are converted. That
// asymmetry is part of the output contract.
type RouteStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	Name        string `json:"name"`
	Type        string `json:"type"`
}

// RouteLeg is one segment of a route between consecutive waypoints.
type RouteLeg struct {
	Distance string      `json:"distance"`
	Duration string      `json:"duration"`
	Steps    []RouteStep `json:"steps"`
}

// RouteResult is a normalized routing answer. When the upstream reports zero
// routes, Error is set and all other fields are empty (the "no route"
// sentinel); callers must not treat that as a failure.
type RouteResult struct {
	Error    string          `json:"error,omitempty"`
	Distance string          `json:"distance,omitempty"`
	Duration string          `json:"duration,omitempty"`
	Geometry json.RawMessage `json:"geometry,omitempty"`
	Legs     []RouteLeg      `json:"legs,omitempty"`
}
