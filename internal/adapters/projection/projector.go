// Package projection implements the projection port: pure mapping from Task
// aggregates to transport-neutral DTOs.
package projection

import (
	"github.com/taskvault/taskvault/internal/domain/task"
	"github.com/taskvault/taskvault/internal/ports"
)

// Compile-time check that TaskProjector implements ports.TaskProjector.
var _ ports.TaskProjector = TaskProjector{}

// TaskProjector is the default, stateless Task → TaskDTO projection.
type TaskProjector struct{}

// NewTaskProjector creates a TaskProjector.
func NewTaskProjector() TaskProjector {
	return TaskProjector{}
}

// ToDTO maps a Task aggregate to its outward projection. The tombstone
// fields are deliberately not part of the projection: deleted tasks are
// never handed out.
func (TaskProjector) ToDTO(t *task.Task) ports.TaskDTO {
	return ports.TaskDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		DueDate:     t.DueDate(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}
