package app

import (
	"context"
	"testing"

	"github.com/taskvault/taskvault/internal/adapters/projection"
	"github.com/taskvault/taskvault/internal/adapters/storage/gormstore"
	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/domain/task"
	"github.com/taskvault/taskvault/internal/ports"
)

// TestTaskService_Lifecycle runs the full create, list, delete, get sequence
// against a real SQLite-backed store instead of fakes, covering the seams the
// per-operation tests stub out.
func TestTaskService_Lifecycle(t *testing.T) {
	t.Parallel()

	store, err := gormstore.Open(":memory:", nil)
	if err != nil {
		t.Fatalf("Open(:memory:) error = %v", err)
	}

	svc := NewTaskService(store, projection.NewTaskProjector(), discardLogger())

	ctx := context.Background()
	owner := userPrincipal()
	other := userPrincipal()

	created := svc.CreateTask(ctx, owner, ports.CreateTaskInput{
		Title:       "Write report",
		Description: "Quarterly numbers",
		Priority:    task.PriorityHigh,
	})
	if !created.OK() {
		t.Fatalf("CreateTask() failed: %s", created.Reason())
	}
	id := created.Value().ID

	ownerPage := svc.ListTasks(ctx, owner, ports.ListTasksInput{Page: 1, PageSize: 20})
	if !ownerPage.OK() {
		t.Fatalf("ListTasks(owner) failed: %s", ownerPage.Reason())
	}
	if got := ownerPage.Value().TotalCount; got != 1 {
		t.Fatalf("owner TotalCount = %d, want 1", got)
	}
	if got := ownerPage.Value().Items[0].ID; got != id {
		t.Errorf("listed task id = %v, want %v", got, id)
	}

	otherPage := svc.ListTasks(ctx, other, ports.ListTasksInput{Page: 1, PageSize: 20})
	if !otherPage.OK() {
		t.Fatalf("ListTasks(other) failed: %s", otherPage.Reason())
	}
	if got := otherPage.Value().TotalCount; got != 0 {
		t.Errorf("other caller TotalCount = %d, want 0", got)
	}

	if res := svc.DeleteTask(ctx, owner, id); !res.OK() {
		t.Fatalf("DeleteTask() failed: %s", res.Reason())
	}

	requireFailure(t, svc.GetTaskByID(ctx, owner, id), domain.CodeNotFound, ReasonTaskNotFound)

	gone := svc.ListTasks(ctx, owner, ports.ListTasksInput{Page: 1, PageSize: 20})
	if !gone.OK() {
		t.Fatalf("ListTasks(owner) after delete failed: %s", gone.Reason())
	}
	if got := gone.Value().TotalCount; got != 0 {
		t.Errorf("owner TotalCount after delete = %d, want 0", got)
	}

	requireFailure(t, svc.DeleteTask(ctx, owner, id), domain.CodeNotFound, ReasonTaskNotFound)
}
