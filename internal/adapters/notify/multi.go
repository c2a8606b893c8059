package notify

import (
	"context"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/ports"
)

// Multi fans every event out to each notifier in order
type Multi []ports.Notifier

// Verify interface compliance at compile time
var _ ports.Notifier = Multi(nil)

// AlarmFired implements Notifier.AlarmFired
func (m Multi) AlarmFired(ctx context.Context, event domain.FireEvent) {
	for _, n := range m {
		if n != nil {
			n.AlarmFired(ctx, event)
		}
	}
}

// Notify implements Notifier.Notify
func (m Multi) Notify(ctx context.Context, notice domain.Notice) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, notice)
		}
	}
}
