package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/ports"
)

const (
	createUserAlarmsTable = `CREATE TABLE IF NOT EXISTS user_alarms (
		user_id TEXT PRIMARY KEY,
		alarms JSONB NOT NULL DEFAULT '[]'::jsonb,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

	upsertUserAlarms = `INSERT INTO user_alarms (user_id, alarms, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET alarms = EXCLUDED.alarms, updated_at = EXCLUDED.updated_at`

	selectUserAlarms = `SELECT alarms FROM user_alarms WHERE user_id = $1`
)

// PostgresMirror stores one JSONB row of alarms per user
type PostgresMirror struct {
	db *sql.DB
}

// Verify interface compliance at compile time
var _ ports.AlarmMirror = (*PostgresMirror)(nil)

// OpenPostgres connects to the database at dsn and makes sure the table exists
func OpenPostgres(ctx context.Context, dsn string) (*PostgresMirror, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	mirror := NewPostgresMirror(db)
	if err := mirror.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return mirror, nil
}

// NewPostgresMirror wraps an existing connection pool
func NewPostgresMirror(db *sql.DB) *PostgresMirror {
	return &PostgresMirror{db: db}
}

// Migrate creates the user_alarms table if needed
func (m *PostgresMirror) Migrate(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, createUserAlarmsTable); err != nil {
		return fmt.Errorf("failed to create user_alarms table: %w", err)
	}
	return nil
}

// Save implements AlarmMirror.Save
func (m *PostgresMirror) Save(ctx context.Context, userID string, alarms []domain.Alarm) error {
	payload, err := EncodeAlarms(alarms)
	if err != nil {
		return err
	}

	if _, err := m.db.ExecContext(ctx, upsertUserAlarms, userID, string(payload)); err != nil {
		return fmt.Errorf("failed to save alarms: %w", err)
	}
	return nil
}

// Load implements AlarmMirror.Load
func (m *PostgresMirror) Load(ctx context.Context, userID string) ([]domain.Alarm, error) {
	var payload []byte
	err := m.db.QueryRowContext(ctx, selectUserAlarms, userID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to load alarms: %w", err)
	}
	return DecodeAlarms(payload)
}

// Close closes the connection pool
func (m *PostgresMirror) Close() error {
	return m.db.Close()
}
