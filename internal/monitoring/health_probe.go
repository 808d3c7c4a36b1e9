package monitoring

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/database"
)

// Checker reports the current database state after probing it.
type Checker interface {
	Check(ctx context.Context) database.State
}

// HealthProbe periodically checks the database so the db_up gauge and the
// readiness probe reflect outages between requests.
type HealthProbe struct {
	checker Checker
	cron    *cron.Cron
	timeout time.Duration

	mu   sync.Mutex
	last database.State
}

// NewHealthProbe creates a probe that runs on the given cron spec, e.g.
// "@every 15s" or a standard five-field expression.
func NewHealthProbe(checker Checker, spec string) (*HealthProbe, error) {
	p := &HealthProbe{
		checker: checker,
		cron:    cron.New(),
		timeout: 5 * time.Second,
		last:    database.StateConnecting,
	}
	if _, err := p.cron.AddFunc(spec, p.probe); err != nil {
		return nil, fmt.Errorf("invalid health schedule %q: %w", spec, err)
	}
	return p, nil
}

// Run starts the probe in the background after one immediate check.
func (p *HealthProbe) Run() {
	log.Info().Msg("Starting background database health probe...")
	p.probe()
	p.cron.Start()
}

// Stop halts the probe and waits for a running check to finish.
func (p *HealthProbe) Stop() {
	<-p.cron.Stop().Done()
	log.Info().Msg("Stopping background database health probe.")
}

// Last returns the state seen by the most recent check.
func (p *HealthProbe) Last() database.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func (p *HealthProbe) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	state := p.checker.Check(ctx)

	p.mu.Lock()
	previous := p.last
	p.last = state
	p.mu.Unlock()

	// Log transitions only.
	if state == previous {
		return
	}
	switch state {
	case database.StateDown:
		log.Warn().Str("previous", previous.String()).Msg("Database health check failing")
	case database.StateUp:
		log.Info().Str("previous", previous.String()).Msg("Database health check recovered")
	}
}
