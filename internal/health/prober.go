// Package health periodically checks that the upstream providers are
// reachable and exposes the latest result per provider for the health
// endpoint.
package health

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Target is one upstream endpoint to probe.
type Target struct {
	Name string
	URL  string
}

// Prober runs reachability checks for a set of targets on a fixed interval.
type Prober struct {
	scheduler  *gocron.Scheduler
	httpClient *http.Client
	targets    []Target
	interval   time.Duration

	mu     sync.RWMutex
	status map[string]string
}

// New creates a Prober. The first probe runs synchronously on Start so the
// health endpoint never reports an empty status.
func New(targets []Target, interval time.Duration, httpClient *http.Client) *Prober {
	return &Prober{
		scheduler:  gocron.NewScheduler(time.UTC),
		httpClient: httpClient,
		targets:    targets,
		interval:   interval,
		status:     make(map[string]string),
	}
}

// Start probes once and then schedules the periodic job.
func (p *Prober) Start() error {
	if len(p.targets) == 0 {
		log.Println("health: no probe targets configured; nothing to schedule")
		return nil
	}

	p.probeAll()

	seconds := int(p.interval.Seconds())
	if seconds <= 0 {
		seconds = 300
	}

	if _, err := p.scheduler.Every(seconds).Seconds().Do(p.probeAll); err != nil {
		return err
	}
	p.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future probes.
func (p *Prober) Stop() {
	if p.scheduler != nil {
		p.scheduler.Stop()
	}
}

// Status returns a copy of the latest per-target results.
func (p *Prober) Status() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]string, len(p.status))
	for k, v := range p.status {
		out[k] = v
	}
	return out
}

func (p *Prober) probeAll() {
	var wg sync.WaitGroup
	for _, t := range p.targets {
		t := t
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			state := "ok"
			if err := p.probe(ctx, t); err != nil {
				log.Printf("health: probe %s failed: %v", t.Name, err)
				state = "unreachable"
			}

			p.mu.Lock()
			p.status[t.Name] = state
			p.mu.Unlock()
		}()
	}
	wg.Wait()
}

func (p *Prober) probe(ctx context.Context, t Target) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL, nil)
	if err != nil {
		return err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
