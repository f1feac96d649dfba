package geo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestBuildRouteURL verifies the OSRM convention: coordinates go
// longitude-first, and the query requests full overview, steps, and GeoJSON
// geometry.
func TestBuildRouteURL(t *testing.T) {
	u, err := buildRouteURL("https://example.org", "driving", 21.0285, 105.8542, 10.7769, 106.7009)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(u, "/route/v1/driving/105.8542,21.0285;106.7009,10.7769?") {
		t.Fatalf("unexpected path: %s", u)
	}
	for _, want := range []string{"overview=full", "steps=true", "geometries=geojson"} {
		if !strings.Contains(u, want) {
			t.Fatalf("url missing %q: %s", want, u)
		}
	}
}

func TestBuildRouteURLRejectsUnknownProfile(t *testing.T) {
	_, err := buildRouteURL("https://example.org", "flying", 0, 0, 1, 1)
	if !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
	for _, p := range ValidProfiles {
		if !strings.Contains(err.Error(), p) {
			t.Fatalf("error does not list profile %q: %v", p, err)
		}
	}
}

// TestNormalizeRouteNoRoutes verifies the zero-route sentinel: no panic, no
// indexing into an empty collection.
func TestNormalizeRouteNoRoutes(t *testing.T) {
	got := normalizeRoute(osrmResponse{Code: "Ok"})
	if got.Error != "No routes found" {
		t.Fatalf("expected no-route sentinel, got %+v", got)
	}
	if got.Distance != "" || len(got.Legs) != 0 {
		t.Fatalf("sentinel should carry no route data: %+v", got)
	}
}

func TestNormalizeRouteFormatting(t *testing.T) {
	payload := osrmResponse{
		Code: "Ok",
		Routes: []osrmRoute{{
			Distance: 1234.5,
			Duration: 90,
			Geometry: json.RawMessage(`{"type":"LineString","coordinates":[[105.8,21.0]]}`),
			Legs: []osrmLeg{{
				Distance: 1234.5,
				Duration: 90,
				Steps: []osrmStep{
					{Distance: 24.3, Duration: 12, Name: "Hang Bai"},
				},
			}},
		}},
	}

	got := normalizeRoute(payload)
	if got.Distance != "1.23 km" {
		t.Fatalf("expected 1.23 km, got %q", got.Distance)
	}
	if got.Duration != "1.5 minutes" {
		t.Fatalf("expected 1.5 minutes, got %q", got.Duration)
	}
	if len(got.Legs) != 1 || got.Legs[0].Distance != "1.23 km" {
		t.Fatalf("unexpected legs: %+v", got.Legs)
	}

	// Steps stay in raw meters/seconds; this asymmetry is part of the
	// contract.
	step := got.Legs[0].Steps[0]
	if step.Distance != "24.3 m" || step.Duration != "12 s" {
		t.Fatalf("unexpected step units: %+v", step)
	}
	if step.Instruction != "Continue" {
		t.Fatalf("expected default instruction, got %q", step.Instruction)
	}
	if string(got.Geometry) != `{"type":"LineString","coordinates":[[105.8,21.0]]}` {
		t.Fatalf("geometry not passed through: %s", got.Geometry)
	}
}

func TestRouteRoutingError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoSegment","message":"Could not find a matching segment"}`))
	}))
	defer srv.Close()

	client := NewOSRMClient(srv.Client(), "test-agent")
	client.baseURL = srv.URL

	_, err := client.Route(context.Background(), "driving", 0, 0, 1, 1)
	if !errors.Is(err, ErrRouting) {
		t.Fatalf("expected ErrRouting, got %v", err)
	}
	if !strings.Contains(err.Error(), "Could not find a matching segment") {
		t.Fatalf("expected upstream message, got %v", err)
	}
}
