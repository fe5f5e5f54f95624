package dto

import (
	"time"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/ports"
)

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToTaskResponse converts a task DTO to an HTTP response DTO.
func ToTaskResponse(t ports.TaskDTO) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(time.RFC3339)
		resp.DueDate = &due
	}
	return resp
}

// TaskPageResponse represents one page of tasks in HTTP responses.
type TaskPageResponse struct {
	Items      []TaskResponse `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int            `json:"total_count"`
	TotalPages int            `json:"total_pages"`
}

// ToTaskPageResponse converts a page of task DTOs to an HTTP response DTO.
func ToTaskPageResponse(p domain.Page[ports.TaskDTO]) TaskPageResponse {
	items := make([]TaskResponse, len(p.Items))
	for i := range p.Items {
		items[i] = ToTaskResponse(p.Items[i])
	}
	return TaskPageResponse{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}
}
