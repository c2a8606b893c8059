package notify

import (
	"context"
	"sync"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/ports"
)

// Relay is a notifier whose targets are attached after the services that use
// it are built. Events with no target attached are dropped.
type Relay struct {
	mu      sync.RWMutex
	targets Multi
}

// Verify interface compliance at compile time
var _ ports.Notifier = (*Relay)(nil)

// NewRelay creates a relay with no targets
func NewRelay() *Relay {
	return &Relay{}
}

// Attach adds a target. Nil targets are ignored.
func (r *Relay) Attach(n ports.Notifier) {
	if n == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets = append(r.targets, n)
}

// AlarmFired implements Notifier.AlarmFired
func (r *Relay) AlarmFired(ctx context.Context, event domain.FireEvent) {
	r.snapshot().AlarmFired(ctx, event)
}

// Notify implements Notifier.Notify
func (r *Relay) Notify(ctx context.Context, notice domain.Notice) {
	r.snapshot().Notify(ctx, notice)
}

func (r *Relay) snapshot() Multi {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(Multi(nil), r.targets...)
}
