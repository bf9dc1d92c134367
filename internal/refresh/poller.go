package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Poller re-seeds the record store on a fixed interval. It only ever
// touches record repositories: a tick that overlaps a user's filter
// change can never corrupt filter state. Disabling auto refresh stops
// future ticks without tearing the poller down.
type Poller struct {
	interval time.Duration
	refresh  func() error
	log      zerolog.Logger

	mu      sync.Mutex
	enabled bool
	cancel  context.CancelFunc
}

// New builds a poller around the given refresh function.
func New(interval time.Duration, refresh func() error, log zerolog.Logger) *Poller {
	return &Poller{
		interval: interval,
		refresh:  refresh,
		log:      log,
		enabled:  true,
	}
}

// Start launches the polling loop. Calling Start twice restarts it.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.mu.Unlock()

	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.Enabled() {
				continue
			}
			if err := p.refresh(); err != nil {
				p.log.Warn().Err(err).Msg("record store refresh failed")
			}
		}
	}
}

// RefreshNow runs one refresh immediately, outside the tick schedule.
func (p *Poller) RefreshNow() error {
	return p.refresh()
}

// Stop cancels the loop entirely.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// SetEnabled switches auto refresh on or off.
func (p *Poller) SetEnabled(on bool) {
	p.mu.Lock()
	p.enabled = on
	p.mu.Unlock()
}

// Enabled reports whether ticks currently refresh the store.
func (p *Poller) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}
