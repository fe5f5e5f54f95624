package gormstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/domain/task"
)

// taskRecord is the GORM row model for tasks. The tombstone is an explicit
// flag plus timestamp owned by the domain, not gorm.DeletedAt: queries must
// be able to see tombstoned rows on the by-id path.
type taskRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"size:2000"`
	DueDate     *time.Time
	Priority    string    `gorm:"size:16;not null"`
	Status      string    `gorm:"size:16;not null"`
	OwnerID     string    `gorm:"size:36;not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	IsDeleted   bool `gorm:"not null;default:false;index"`
	DeletedAt   *time.Time
}

// TableName returns the table name for the task row model.
func (taskRecord) TableName() string {
	return "tasks"
}

// toRecord flattens a Task aggregate into its row model.
func toRecord(t *task.Task) taskRecord {
	return taskRecord{
		ID:          t.ID().String(),
		Title:       t.Title(),
		Description: t.Description(),
		DueDate:     t.DueDate(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		OwnerID:     t.OwnerID().String(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		IsDeleted:   t.IsDeleted(),
		DeletedAt:   t.DeletedAt(),
	}
}

// toDomain rehydrates a Task aggregate from its row model.
func (r taskRecord) toDomain() (*task.Task, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := uuid.Parse(r.OwnerID)
	if err != nil {
		return nil, err
	}

	return task.Rehydrate(
		id,
		r.Title,
		r.Description,
		r.DueDate,
		task.Priority(r.Priority),
		task.Status(r.Status),
		ownerID,
		r.CreatedAt,
		r.UpdatedAt,
		r.IsDeleted,
		r.DeletedAt,
	), nil
}
