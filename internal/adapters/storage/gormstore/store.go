// Package gormstore implements the TaskStore port on GORM with a SQLite
// backend. The store is deliberately dumb: it persists and retrieves rows;
// tombstone policy, authorization and pagination live in the core.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/domain/task"
	"github.com/taskvault/taskvault/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store is a GORM-backed TaskStore.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open connects to the SQLite database at dsn, migrates the task table, and
// returns a ready Store. Use ":memory:" or "file::memory:?cache=shared" for
// an in-memory database.
func Open(dsn string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database %q: %w", dsn, err)
	}

	if err := db.AutoMigrate(&taskRecord{}); err != nil {
		return nil, fmt.Errorf("migrating task table: %w", err)
	}

	return &Store{db: db, logger: log}, nil
}

// NewStore wraps an existing GORM handle. The task table must already exist.
func NewStore(db *gorm.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{db: db, logger: log}
}

// FindByID returns the task with the given id, tombstoned or not.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	var rec taskRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("finding task %s: %w", id, err)
	}

	t, err := rec.toDomain()
	if err != nil {
		return nil, fmt.Errorf("rehydrating task %s: %w", id, err)
	}
	return t, nil
}

// Query returns non-deleted tasks matching the filter, newest first. The id
// is a deterministic tiebreak for tasks created in the same instant.
func (s *Store) Query(ctx context.Context, filter task.Filter) ([]*task.Task, error) {
	q := s.db.WithContext(ctx).
		Where("owner_id = ? AND is_deleted = ?", filter.OwnerID.String(), false).
		Order("created_at DESC, id DESC")

	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", filter.Priority.String())
	}

	var recs []taskRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}

	tasks := make([]*task.Task, 0, len(recs))
	for _, rec := range recs {
		t, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("rehydrating task %s: %w", rec.ID, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Insert persists a new task row.
func (s *Store) Insert(ctx context.Context, t *task.Task) error {
	rec := toRecord(t)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("inserting task %s: %w", t.ID(), err)
	}
	return nil
}

// Update persists the full current state of an existing task row.
func (s *Store) Update(ctx context.Context, t *task.Task) error {
	rec := toRecord(t)
	res := s.db.WithContext(ctx).Model(&taskRecord{}).
		Where("id = ?", rec.ID).
		Select("*").
		Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("updating task %s: %w", t.ID(), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("task %s: %w", t.ID(), domain.ErrNotFound)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "database"
}

// HealthCheck pings the underlying database.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("acquiring sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}
