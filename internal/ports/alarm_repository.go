package ports

import (
	"context"

	"github.com/renato0307/despertar/internal/domain"
)

// AlarmReader reads alarms from local storage
type AlarmReader interface {
	Get(ctx context.Context, id string) (*domain.Alarm, error)
	List(ctx context.Context) ([]domain.Alarm, error)
}

// AlarmWriter writes alarms to local storage
type AlarmWriter interface {
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, alarms []domain.Alarm) error
	Upsert(ctx context.Context, alarm domain.Alarm) error
}

// AlarmRepository is the composite local storage interface
type AlarmRepository interface {
	AlarmReader
	AlarmWriter
	Close() error
}
