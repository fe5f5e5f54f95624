package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/auth"
	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/domain/task"
)

// TaskService defines the service port for task operations. Every method
// takes the verified caller identity explicitly and returns a Result:
// expected business failures (validation, not found, permission denied)
// are carried in the envelope, never raised.
type TaskService interface {
	// CreateTask creates a task owned by the caller. The owner is always the
	// caller; it is never taken from the input.
	// Fails with CodeValidation when the title is empty.
	CreateTask(ctx context.Context, caller auth.Principal, in CreateTaskInput) domain.Result[TaskDTO]

	// UpdateTask applies the non-nil fields of in to the task. Permitted for
	// the task's owner or an admin.
	UpdateTask(ctx context.Context, caller auth.Principal, id uuid.UUID, in UpdateTaskInput) domain.Result[TaskDTO]

	// DeleteTask soft-deletes the task. Permitted for the task's owner or an
	// admin. Deleting an already-deleted task fails with CodeNotFound.
	DeleteTask(ctx context.Context, caller auth.Principal, id uuid.UUID) domain.Result[struct{}]

	// GetTaskByID returns the task projection. A missing or soft-deleted
	// task fails with CodeNotFound; a foreign task without the admin role
	// fails with CodePermissionDenied.
	GetTaskByID(ctx context.Context, caller auth.Principal, id uuid.UUID) domain.Result[TaskDTO]

	// ListTasks returns one page of the caller's own non-deleted tasks,
	// newest first. Admins see only their own tasks here; the admin override
	// applies to the by-id read only.
	ListTasks(ctx context.Context, caller auth.Principal, in ListTasksInput) domain.Result[domain.Page[TaskDTO]]
}

// CreateTaskInput carries the caller-supplied fields for task creation.
// A zero Priority defaults to task.DefaultPriority.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    task.Priority
}

// UpdateTaskInput carries a partial update; nil fields are left unchanged.
// ClearDueDate removes the due date and takes precedence over DueDate.
type UpdateTaskInput struct {
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	Priority     *task.Priority
	Status       *task.Status
}

// ListTasksInput carries the paging window and optional equality filters.
type ListTasksInput struct {
	Page     int
	PageSize int
	Status   *task.Status
	Priority *task.Priority
}

// TaskDTO is the outward projection of a Task aggregate.
type TaskDTO struct {
	ID          uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskProjector defines the projection port: a pure, side-effect-free
// mapping from Task aggregates to DTOs.
type TaskProjector interface {
	ToDTO(t *task.Task) TaskDTO
}
