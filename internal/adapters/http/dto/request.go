// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter.
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/domain/task"
	"github.com/taskvault/taskvault/internal/ports"
)

// CreateTaskRequest is the payload for POST /api/v1/tasks. The owner is
// never part of the payload; it is taken from the verified caller.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"`
}

// Validate checks the request shape. Field-level business rules are
// re-validated by the aggregate; this catches malformed payloads early.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if r.Priority != "" && !task.Priority(r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", r.Priority)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToInput maps the request to the service input.
func (r *CreateTaskRequest) ToInput() ports.CreateTaskInput {
	return ports.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    task.Priority(r.Priority),
	}
}

// UpdateTaskRequest is the payload for PATCH /api/v1/tasks/{id}.
// Nil fields are left unchanged; clear_due_date removes the due date and
// takes precedence over due_date.
type UpdateTaskRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	DueDate      *time.Time `json:"due_date"`
	ClearDueDate bool       `json:"clear_due_date"`
	Priority     *string    `json:"priority"`
	Status       *string    `json:"status"`
}

// Validate checks the request shape.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if r.Priority != nil && !task.Priority(*r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *r.Priority)
	}
	if r.Status != nil && !task.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToInput maps the request to the service input.
func (r *UpdateTaskRequest) ToInput() ports.UpdateTaskInput {
	in := ports.UpdateTaskInput{
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      r.DueDate,
		ClearDueDate: r.ClearDueDate,
	}
	if r.Priority != nil {
		p := task.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.Status != nil {
		s := task.Status(*r.Status)
		in.Status = &s
	}
	return in
}
