package health

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProbeAll(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer up.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	down.Close()

	p := New([]Target{
		{Name: "up", URL: up.URL},
		{Name: "down", URL: down.URL},
	}, time.Minute, up.Client())

	p.probeAll()

	status := p.Status()
	if status["up"] != "ok" {
		t.Fatalf("expected up target ok, got %q", status["up"])
	}
	if status["down"] != "unreachable" {
		t.Fatalf("expected down target unreachable, got %q", status["down"])
	}
}

func TestStartWithoutTargets(t *testing.T) {
	p := New(nil, time.Minute, http.DefaultClient)
	if err := p.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Stop()

	if len(p.Status()) != 0 {
		t.Fatalf("expected empty status, got %+v", p.Status())
	}
}

// TestStatusReturnsCopy guards against callers mutating internal state.
func TestStatusReturnsCopy(t *testing.T) {
	p := New(nil, time.Minute, http.DefaultClient)
	p.status["x"] = "ok"

	got := p.Status()
	got["x"] = "mutated"

	if p.Status()["x"] != "ok" {
		t.Fatal("Status must return a copy")
	}
}
