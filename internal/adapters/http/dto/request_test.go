package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/domain/task"
)

func strPtr(v string) *string { return &v }

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       CreateTaskRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request passes",
			req:  CreateTaskRequest{Title: "Write report", Priority: "high"},
		},
		{
			name: "empty priority passes (defaults later)",
			req:  CreateTaskRequest{Title: "Write report"},
		},
		{
			name:      "empty title fails",
			req:       CreateTaskRequest{Title: ""},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace title fails",
			req:       CreateTaskRequest{Title: " \t "},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "unknown priority fails",
			req:       CreateTaskRequest{Title: "x", Priority: "urgent"},
			wantErr:   true,
			wantField: "priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestCreateTaskRequest_ToInput(t *testing.T) {
	t.Parallel()

	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	req := CreateTaskRequest{
		Title:       "Write report",
		Description: "quarterly numbers",
		DueDate:     &due,
		Priority:    "high",
	}

	in := req.ToInput()
	if in.Title != req.Title || in.Description != req.Description {
		t.Error("ToInput() did not carry text fields")
	}
	if in.DueDate == nil || !in.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", in.DueDate, due)
	}
	if in.Priority != task.PriorityHigh {
		t.Errorf("Priority = %q, want %q", in.Priority, task.PriorityHigh)
	}
}

func TestUpdateTaskRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       UpdateTaskRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "empty request passes (no-op update)",
			req:  UpdateTaskRequest{},
		},
		{
			name: "valid partial update passes",
			req:  UpdateTaskRequest{Title: strPtr("New"), Status: strPtr("completed")},
		},
		{
			name:      "blank title fails",
			req:       UpdateTaskRequest{Title: strPtr("  ")},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "unknown priority fails",
			req:       UpdateTaskRequest{Priority: strPtr("critical")},
			wantErr:   true,
			wantField: "priority",
		},
		{
			name:      "unknown status fails",
			req:       UpdateTaskRequest{Status: strPtr("done")},
			wantErr:   true,
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestUpdateTaskRequest_ToInput(t *testing.T) {
	t.Parallel()

	req := UpdateTaskRequest{
		Title:        strPtr("New title"),
		ClearDueDate: true,
		Priority:     strPtr("low"),
		Status:       strPtr("in_progress"),
	}

	in := req.ToInput()
	if in.Title == nil || *in.Title != "New title" {
		t.Errorf("Title = %v, want New title", in.Title)
	}
	if !in.ClearDueDate {
		t.Error("ClearDueDate = false, want true")
	}
	if in.Priority == nil || *in.Priority != task.PriorityLow {
		t.Errorf("Priority = %v, want low", in.Priority)
	}
	if in.Status == nil || *in.Status != task.StatusInProgress {
		t.Errorf("Status = %v, want in_progress", in.Status)
	}
	if in.Description != nil {
		t.Error("Description should stay nil when absent")
	}
}
