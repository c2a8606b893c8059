package ports

import (
	"context"

	"github.com/renato0307/despertar/internal/domain"
)

// AlarmMirror stores the full alarm list of a user on a hosted backend.
// Save is an upsert keyed by user (last write wins).
// Load returns domain.ErrRecordNotFound when the user has no saved list.
type AlarmMirror interface {
	Load(ctx context.Context, userID string) ([]domain.Alarm, error)
	Save(ctx context.Context, userID string, alarms []domain.Alarm) error
}
