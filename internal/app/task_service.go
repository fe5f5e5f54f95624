// Package app provides the application services that orchestrate use cases
// by coordinating the domain aggregates with storage and projection through
// port interfaces. Authorization policy lives here: commands and the by-id
// read are permitted for the task's owner or an admin; the list query is
// always scoped to the caller.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/app/txn"
	"github.com/taskvault/taskvault/internal/auth"
	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/domain/task"
	"github.com/taskvault/taskvault/internal/ports"
)

// Stable display reasons for expected business failures.
const (
	ReasonTaskNotFound     = "Task not found"
	ReasonCannotViewTask   = "You don't have permission to view this task"
	ReasonCannotModifyTask = "You don't have permission to modify this task"
	ReasonCannotDeleteTask = "You don't have permission to delete this task"
	ReasonStorageFailure   = "storage unavailable"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. It holds no cross-request state:
// each call loads, mutates and commits a single Task aggregate.
type TaskService struct {
	store     ports.TaskStore
	projector ports.TaskProjector
	logger    *slog.Logger
	now       func() time.Time
}

// NewTaskService creates a TaskService backed by the given store and
// projector.
func NewTaskService(store ports.TaskStore, projector ports.TaskProjector, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		store:     store,
		projector: projector,
		logger:    logger,
		now:       time.Now,
	}
}

// canAccess is the shared authorization rule for update, delete and the
// by-id read: the task's owner, or any caller with the admin role.
func canAccess(caller auth.Principal, t *task.Task) bool {
	return t.OwnerID() == caller.ID || caller.IsAdmin()
}

// CreateTask builds a new aggregate owned by the caller and commits exactly
// one insert. The owner is always the verified caller identity, never input.
func (s *TaskService) CreateTask(ctx context.Context, caller auth.Principal, in ports.CreateTaskInput) domain.Result[ports.TaskDTO] {
	s.logger.InfoContext(ctx, "creating task", slog.String("owner_id", caller.ID.String()))

	t, err := task.New(in.Title, in.Description, caller.ID, in.DueDate, in.Priority, s.now())
	if err != nil {
		return domain.FailFrom[ports.TaskDTO](err)
	}

	tx := txn.New()
	_ = tx.Add(txn.NewAction("insert task "+t.ID().String(), func(ctx context.Context) error {
		return s.store.Insert(ctx, t)
	}))

	if err := tx.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.String("task_id", t.ID().String()),
			slog.Any("error", err),
		)
		return domain.Fail[ports.TaskDTO](domain.CodeInfrastructure, ReasonStorageFailure)
	}

	return domain.Ok(s.projector.ToDTO(t))
}

// UpdateTask loads the task, authorizes the caller, applies the non-nil
// fields through the aggregate's validated mutators, and commits one update.
func (s *TaskService) UpdateTask(ctx context.Context, caller auth.Principal, id uuid.UUID, in ports.UpdateTaskInput) domain.Result[ports.TaskDTO] {
	s.logger.InfoContext(ctx, "updating task", slog.String("task_id", id.String()))

	t, res := loadLive[ports.TaskDTO](ctx, s, id)
	if t == nil {
		return res
	}
	if !canAccess(caller, t) {
		return domain.Fail[ports.TaskDTO](domain.CodePermissionDenied, ReasonCannotModifyTask)
	}

	now := s.now()
	if in.Title != nil {
		if err := t.UpdateTitle(*in.Title, now); err != nil {
			return domain.FailFrom[ports.TaskDTO](err)
		}
	}
	if in.Description != nil {
		t.UpdateDescription(*in.Description, now)
	}
	if in.ClearDueDate {
		t.UpdateDueDate(nil, now)
	} else if in.DueDate != nil {
		t.UpdateDueDate(in.DueDate, now)
	}
	if in.Priority != nil {
		if err := t.UpdatePriority(*in.Priority, now); err != nil {
			return domain.FailFrom[ports.TaskDTO](err)
		}
	}
	if in.Status != nil {
		if err := t.UpdateStatus(*in.Status, now); err != nil {
			return domain.FailFrom[ports.TaskDTO](err)
		}
	}

	tx := txn.New()
	_ = tx.Add(txn.NewAction("update task "+id.String(), func(ctx context.Context) error {
		return s.store.Update(ctx, t)
	}))

	if err := tx.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return domain.Fail[ports.TaskDTO](domain.CodeInfrastructure, ReasonStorageFailure)
	}

	return domain.Ok(s.projector.ToDTO(t))
}

// DeleteTask loads the task, authorizes the caller, and commits the
// soft-delete tombstone. Deleting an already-deleted task is NotFound, the
// same as any other access to a tombstoned aggregate.
func (s *TaskService) DeleteTask(ctx context.Context, caller auth.Principal, id uuid.UUID) domain.Result[struct{}] {
	s.logger.InfoContext(ctx, "deleting task", slog.String("task_id", id.String()))

	t, res := loadLive[struct{}](ctx, s, id)
	if t == nil {
		return res
	}
	if !canAccess(caller, t) {
		return domain.Fail[struct{}](domain.CodePermissionDenied, ReasonCannotDeleteTask)
	}

	t.Delete(s.now())

	tx := txn.New()
	_ = tx.Add(txn.NewAction("delete task "+id.String(), func(ctx context.Context) error {
		return s.store.Update(ctx, t)
	}))

	if err := tx.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return domain.Fail[struct{}](domain.CodeInfrastructure, ReasonStorageFailure)
	}

	return domain.Ok(struct{}{})
}

// GetTaskByID returns the projection of a single live task. A tombstoned
// task is indistinguishable from an absent one. Unlike ListTasks, an admin
// may read any user's task here.
func (s *TaskService) GetTaskByID(ctx context.Context, caller auth.Principal, id uuid.UUID) domain.Result[ports.TaskDTO] {
	s.logger.InfoContext(ctx, "fetching task", slog.String("task_id", id.String()))

	t, res := loadLive[ports.TaskDTO](ctx, s, id)
	if t == nil {
		return res
	}
	if !canAccess(caller, t) {
		return domain.Fail[ports.TaskDTO](domain.CodePermissionDenied, ReasonCannotViewTask)
	}

	return domain.Ok(s.projector.ToDTO(t))
}

// ListTasks returns one page of the caller's own non-deleted tasks, newest
// first. There is no admin override on this path: the owner predicate is
// fixed to the caller before any optional filter is applied.
func (s *TaskService) ListTasks(ctx context.Context, caller auth.Principal, in ports.ListTasksInput) domain.Result[domain.Page[ports.TaskDTO]] {
	s.logger.InfoContext(ctx, "listing tasks",
		slog.String("owner_id", caller.ID.String()),
		slog.Int("page", in.Page),
		slog.Int("page_size", in.PageSize),
	)

	req, err := domain.NewPageRequest(in.Page, in.PageSize)
	if err != nil {
		return domain.FailFrom[domain.Page[ports.TaskDTO]](err)
	}

	filter := task.Filter{
		OwnerID:  caller.ID,
		Status:   in.Status,
		Priority: in.Priority,
	}

	tasks, err := s.store.Query(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.String("owner_id", caller.ID.String()),
			slog.Any("error", err),
		)
		return domain.Fail[domain.Page[ports.TaskDTO]](domain.CodeInfrastructure, ReasonStorageFailure)
	}

	page := domain.NewPage(tasks, req)
	return domain.Ok(domain.MapPage(page, s.projector.ToDTO))
}

// loadLive fetches a task and applies the tombstone policy: absent and
// soft-deleted tasks both surface as NotFound. On failure the returned task
// is nil and the Result carries the reason.
func loadLive[T any](ctx context.Context, s *TaskService, id uuid.UUID) (*task.Task, domain.Result[T]) {
	t, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Fail[T](domain.CodeNotFound, ReasonTaskNotFound)
		}
		s.logger.ErrorContext(ctx, "failed to load task",
			slog.String("operation", "FindByID"),
			slog.String("task_id", id.String()),
			slog.Any("error", fmt.Errorf("loading task: %w", err)),
		)
		return nil, domain.Fail[T](domain.CodeInfrastructure, ReasonStorageFailure)
	}
	if t.IsDeleted() {
		return nil, domain.Fail[T](domain.CodeNotFound, ReasonTaskNotFound)
	}
	return t, domain.Result[T]{}
}
