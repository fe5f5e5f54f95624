// Package task defines the Task aggregate root: a user-owned work item with
// validated field mutators and a soft-delete lifecycle. All mutations go
// through the aggregate so its invariants (non-empty title, immutable owner
// and creation time, irreversible tombstone) hold at every step.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/domain"
)

// Task is the aggregate root. Fields are unexported; state changes only
// through the validated mutators below. The owner and creation time are
// fixed at construction.
type Task struct {
	id          uuid.UUID
	title       string
	description string
	dueDate     *time.Time
	priority    Priority
	status      Status
	ownerID     uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
	isDeleted   bool
	deletedAt   *time.Time
}

// New creates a Task owned by ownerID. The title is stored trimmed and must
// be non-empty; a zero priority defaults to DefaultPriority. Status always
// starts at DefaultStatus and the tombstone is unset.
func New(title, description string, ownerID uuid.UUID, dueDate *time.Time, priority Priority, now time.Time) (*Task, error) {
	if priority == "" {
		priority = DefaultPriority
	}

	title = strings.TrimSpace(title)
	fields := make(map[string]string)
	if title == "" {
		fields["title"] = domain.MsgRequired
	}
	if !priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", priority)
	}
	if ownerID == uuid.Nil {
		fields["owner_id"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &Task{
		id:          uuid.New(),
		title:       title,
		description: description,
		dueDate:     dueDate,
		priority:    priority,
		status:      DefaultStatus,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Rehydrate reconstructs a Task from persisted state without validation.
// For storage adapters only.
func Rehydrate(
	id uuid.UUID,
	title, description string,
	dueDate *time.Time,
	priority Priority,
	status Status,
	ownerID uuid.UUID,
	createdAt, updatedAt time.Time,
	isDeleted bool,
	deletedAt *time.Time,
) *Task {
	return &Task{
		id:          id,
		title:       title,
		description: description,
		dueDate:     dueDate,
		priority:    priority,
		status:      status,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		isDeleted:   isDeleted,
		deletedAt:   deletedAt,
	}
}

func (t *Task) ID() uuid.UUID         { return t.id }
func (t *Task) Title() string         { return t.title }
func (t *Task) Description() string   { return t.description }
func (t *Task) DueDate() *time.Time   { return t.dueDate }
func (t *Task) Priority() Priority    { return t.priority }
func (t *Task) Status() Status        { return t.status }
func (t *Task) OwnerID() uuid.UUID    { return t.ownerID }
func (t *Task) CreatedAt() time.Time  { return t.createdAt }
func (t *Task) UpdatedAt() time.Time  { return t.updatedAt }
func (t *Task) IsDeleted() bool       { return t.isDeleted }
func (t *Task) DeletedAt() *time.Time { return t.deletedAt }

// UpdateTitle replaces the title. The new title is stored trimmed and must
// be non-empty.
func (t *Task) UpdateTitle(title string, now time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}
	}
	t.title = title
	t.updatedAt = now
	return nil
}

// UpdateDescription replaces the description. Empty is allowed.
func (t *Task) UpdateDescription(description string, now time.Time) {
	t.description = description
	t.updatedAt = now
}

// UpdateDueDate replaces the due date. Nil clears it.
func (t *Task) UpdateDueDate(dueDate *time.Time, now time.Time) {
	t.dueDate = dueDate
	t.updatedAt = now
}

// UpdatePriority replaces the priority.
func (t *Task) UpdatePriority(priority Priority, now time.Time) error {
	if !priority.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{
			"priority": fmt.Sprintf("invalid: %q", priority),
		}}
	}
	t.priority = priority
	t.updatedAt = now
	return nil
}

// UpdateStatus replaces the workflow status.
func (t *Task) UpdateStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return &domain.ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("invalid: %q", status),
		}}
	}
	t.status = status
	t.updatedAt = now
	return nil
}

// Delete sets the soft-delete tombstone. The transition is terminal: there
// is no restore, and a second call keeps the original deletion time.
func (t *Task) Delete(now time.Time) {
	if t.isDeleted {
		return
	}
	t.isDeleted = true
	deletedAt := now
	t.deletedAt = &deletedAt
	t.updatedAt = now
}
