package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/domain/task"
	"github.com/taskvault/taskvault/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskStore = (*BreakerStore)(nil)

// BreakerSettings configures the storage circuit breaker.
type BreakerSettings struct {
	MaxFailures   int
	Timeout       time.Duration
	HalfOpenLimit int
}

// BreakerStore decorates a TaskStore with a circuit breaker so that a dead
// database fails fast with domain.ErrUnavailable instead of piling up
// blocked requests. NotFound is a business outcome, not a storage failure,
// and does not count against the breaker.
type BreakerStore struct {
	inner ports.TaskStore
	cb    *gobreaker.CircuitBreaker[any]
}

// NewBreakerStore wraps inner with a circuit breaker using the given settings.
func NewBreakerStore(inner ports.TaskStore, settings BreakerSettings) *BreakerStore {
	maxFailures := uint32(settings.MaxFailures)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "task-store",
		MaxRequests: uint32(settings.HalfOpenLimit),
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrNotFound)
		},
	})

	return &BreakerStore{inner: inner, cb: cb}
}

// execute runs fn through the breaker, translating open-circuit errors into
// domain.ErrUnavailable.
func (b *BreakerStore) execute(fn func() (any, error)) (any, error) {
	v, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("task store circuit open: %w", domain.ErrUnavailable)
		}
		return nil, err
	}
	return v, nil
}

// FindByID implements ports.TaskStore.
func (b *BreakerStore) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	v, err := b.execute(func() (any, error) {
		return b.inner.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*task.Task), nil
}

// Query implements ports.TaskStore.
func (b *BreakerStore) Query(ctx context.Context, filter task.Filter) ([]*task.Task, error) {
	v, err := b.execute(func() (any, error) {
		return b.inner.Query(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return v.([]*task.Task), nil
}

// Insert implements ports.TaskStore.
func (b *BreakerStore) Insert(ctx context.Context, t *task.Task) error {
	_, err := b.execute(func() (any, error) {
		return nil, b.inner.Insert(ctx, t)
	})
	return err
}

// Update implements ports.TaskStore.
func (b *BreakerStore) Update(ctx context.Context, t *task.Task) error {
	_, err := b.execute(func() (any, error) {
		return nil, b.inner.Update(ctx, t)
	})
	return err
}
