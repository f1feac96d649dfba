package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClampSearchLimit(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{5, 5},
		{50, 50},
		{51, 50},
		{1000, 50},
	}
	for _, c := range cases {
		if got := ClampSearchLimit(c.in); got != c.want {
			t.Fatalf("ClampSearchLimit(%d): expected %d, got %d", c.in, c.want, got)
		}
	}
}

// TestSearchCapsLimitAtFifty verifies the effective limit sent upstream is
// exactly 50 for any larger request.
func TestSearchCapsLimitAtFifty(t *testing.T) {
	var gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		if r.URL.Query().Get("addressdetails") != "1" {
			t.Errorf("expected addressdetails=1, got %q", r.URL.Query().Get("addressdetails"))
		}
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("expected format=json, got %q", r.URL.Query().Get("format"))
		}
		json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.Client(), "test-agent")
	client.baseURL = srv.URL

	if _, err := client.Search(context.Background(), "Hanoi", 200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != "50" {
		t.Fatalf("expected limit=50, got %q", gotLimit)
	}
}

func TestSearchNormalizesPlaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{
				"place_id": 12345,
				"display_name": "Hanoi, Vietnam",
				"name": "Hanoi",
				"type": "city",
				"lat": "21.0285",
				"lon": "105.8542",
				"address": {"city": "Hanoi", "country": "Vietnam"},
				"importance": 0.83
			},
			{}
		]`))
	}))
	defer srv.Close()

	client := NewNominatimClient(srv.Client(), "test-agent")
	client.baseURL = srv.URL

	locations, err := client.Search(context.Background(), "Hanoi", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locations))
	}

	first := locations[0]
	if first.DisplayName != "Hanoi, Vietnam" || first.Name != "Hanoi" || first.Type != "city" {
		t.Fatalf("unexpected first location: %+v", first)
	}
	if first.Coordinates.Latitude != 21.0285 || first.Coordinates.Longitude != 105.8542 {
		t.Fatalf("unexpected coordinates: %+v", first.Coordinates)
	}
	if first.PlaceID != "12345" {
		t.Fatalf("expected place_id 12345, got %q", first.PlaceID)
	}
	if first.Address["city"] != "Hanoi" {
		t.Fatalf("unexpected address: %+v", first.Address)
	}

	// Empty source record maps to documented defaults, never errors.
	second := locations[1]
	if second.DisplayName != "Unknown" || second.Name != "Unknown" || second.Type != "Unknown" {
		t.Fatalf("expected Unknown defaults, got %+v", second)
	}
	if second.PlaceID != "Unknown" {
		t.Fatalf("expected Unknown place_id, got %q", second.PlaceID)
	}
	if second.Coordinates.Latitude != 0 || second.Coordinates.Longitude != 0 {
		t.Fatalf("expected zero coordinates, got %+v", second.Coordinates)
	}
	if second.Address == nil {
		t.Fatal("expected non-nil address map")
	}
	if second.Importance != 0 {
		t.Fatalf("expected zero importance, got %v", second.Importance)
	}
}
