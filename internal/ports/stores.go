package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/domain/task"
)

// TaskStore defines the storage port for Task aggregates.
// Implemented by the storage adapter; called by the application layer.
type TaskStore interface {
	// FindByID returns the task with the given id, including soft-deleted
	// ones. Tombstone policy belongs to the caller.
	// Returns domain.ErrNotFound if no row exists.
	FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error)

	// Query returns all tasks matching the filter, ordered by creation time
	// descending (newest first). Soft-deleted tasks are never returned.
	Query(ctx context.Context, filter task.Filter) ([]*task.Task, error)

	// Insert persists a new task.
	Insert(ctx context.Context, t *task.Task) error

	// Update persists the current state of an existing task.
	// Returns domain.ErrNotFound if no row exists for the task's id.
	Update(ctx context.Context, t *task.Task) error
}
