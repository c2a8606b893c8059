package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ports"
)

// SQLiteRepository implements ports.AlarmRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.AlarmRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the despertar logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("DESPERTAR_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode so the TUI, CLI and daemon can share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&AlarmModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate Alarm schema: %w", err)
		}
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements AlarmReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Alarm, error) {
	var model AlarmModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAlarmNotFound, id)
		}
		return nil, err
	}

	alarm, err := alarmModelToDomain(model)
	if err != nil {
		return nil, err
	}
	return &alarm, nil
}

// List implements AlarmReader.List. Alarms come back in creation order.
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Alarm, error) {
	var models []AlarmModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("position ASC").Order("created_at ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list alarms: %w", err)
	}

	result := make([]domain.Alarm, 0, len(models))
	for _, m := range models {
		alarm, err := alarmModelToDomain(m)
		if err != nil {
			logging.Logger.Warn("Skipping unreadable alarm row", "id", m.ID, "error", err)
			continue
		}
		result = append(result, alarm)
	}
	return result, nil
}

// Upsert implements AlarmWriter.Upsert. New alarms are appended after existing ones,
// existing alarms keep their position.
func (r *SQLiteRepository) Upsert(ctx context.Context, alarm domain.Alarm) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			model := domainToAlarmModel(alarm)

			var existing AlarmModel
			err := tx.Where("id = ?", alarm.ID).First(&existing).Error
			switch {
			case err == nil:
				model.Position = existing.Position
				model.CreatedAt = existing.CreatedAt
			case errors.Is(err, gorm.ErrRecordNotFound):
				var maxPosition int
				tx.Model(&AlarmModel{}).Select("COALESCE(MAX(position), 0)").Scan(&maxPosition)
				model.Position = maxPosition + 1
			default:
				return err
			}

			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&model).Error; err != nil {
				return fmt.Errorf("failed to save alarm %s: %w", alarm.ID, err)
			}
			return nil
		})
	}, 3)
}

// Delete implements AlarmWriter.Delete. Deleting an unknown id is not an error.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).Delete(&AlarmModel{}).Error
	}, 3)
}

// ReplaceAll implements AlarmWriter.ReplaceAll, swapping the whole collection atomically
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, alarms []domain.Alarm) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&AlarmModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear alarms: %w", err)
			}

			for i, alarm := range alarms {
				model := domainToAlarmModel(alarm)
				model.Position = i + 1
				if err := tx.Create(&model).Error; err != nil {
					return fmt.Errorf("failed to save alarm %s: %w", alarm.ID, err)
				}
			}
			return nil
		})
	}, 3)
}

// withRetry retries fn on SQLITE_BUSY and SQLITE_LOCKED with a linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
