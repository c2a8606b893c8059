package ports

import (
	"context"

	"github.com/renato0307/despertar/internal/domain"
)

// Notifier presents alarm events and transient messages to the user.
// Implementations must not block the caller for a meaningful duration.
type Notifier interface {
	AlarmFired(ctx context.Context, event domain.FireEvent)
	Notify(ctx context.Context, notice domain.Notice)
}
