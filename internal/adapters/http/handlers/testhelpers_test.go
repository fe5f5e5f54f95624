package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/auth"
	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/ports"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeTaskService is a func-field stub for ports.TaskService. Unset methods
// fail the test if called.
type fakeTaskService struct {
	t          *testing.T
	createTask func(ctx context.Context, caller auth.Principal, in ports.CreateTaskInput) domain.Result[ports.TaskDTO]
	updateTask func(ctx context.Context, caller auth.Principal, id uuid.UUID, in ports.UpdateTaskInput) domain.Result[ports.TaskDTO]
	deleteTask func(ctx context.Context, caller auth.Principal, id uuid.UUID) domain.Result[struct{}]
	getTask    func(ctx context.Context, caller auth.Principal, id uuid.UUID) domain.Result[ports.TaskDTO]
	listTasks  func(ctx context.Context, caller auth.Principal, in ports.ListTasksInput) domain.Result[domain.Page[ports.TaskDTO]]
}

func (f *fakeTaskService) CreateTask(ctx context.Context, caller auth.Principal, in ports.CreateTaskInput) domain.Result[ports.TaskDTO] {
	if f.createTask == nil {
		f.t.Fatal("unexpected CreateTask call")
	}
	return f.createTask(ctx, caller, in)
}

func (f *fakeTaskService) UpdateTask(ctx context.Context, caller auth.Principal, id uuid.UUID, in ports.UpdateTaskInput) domain.Result[ports.TaskDTO] {
	if f.updateTask == nil {
		f.t.Fatal("unexpected UpdateTask call")
	}
	return f.updateTask(ctx, caller, id, in)
}

func (f *fakeTaskService) DeleteTask(ctx context.Context, caller auth.Principal, id uuid.UUID) domain.Result[struct{}] {
	if f.deleteTask == nil {
		f.t.Fatal("unexpected DeleteTask call")
	}
	return f.deleteTask(ctx, caller, id)
}

func (f *fakeTaskService) GetTaskByID(ctx context.Context, caller auth.Principal, id uuid.UUID) domain.Result[ports.TaskDTO] {
	if f.getTask == nil {
		f.t.Fatal("unexpected GetTaskByID call")
	}
	return f.getTask(ctx, caller, id)
}

func (f *fakeTaskService) ListTasks(ctx context.Context, caller auth.Principal, in ports.ListTasksInput) domain.Result[domain.Page[ports.TaskDTO]] {
	if f.listTasks == nil {
		f.t.Fatal("unexpected ListTasks call")
	}
	return f.listTasks(ctx, caller, in)
}

func testPrincipal() auth.Principal {
	return auth.Principal{ID: uuid.New(), Roles: []string{"user"}}
}

func validDTO() ports.TaskDTO {
	return ports.TaskDTO{
		ID:          uuid.New(),
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Priority:    "medium",
		Status:      "pending",
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

// authedRequest builds a request carrying the principal and optional chi URL
// params, the way the router and auth middleware would hand it over.
func authedRequest(t *testing.T, method, target string, body *bytes.Buffer, p auth.Principal, params map[string]string) *http.Request {
	t.Helper()

	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, body)
	} else {
		r = httptest.NewRequest(method, target, nil)
	}

	ctx := auth.WithPrincipal(r.Context(), p)
	if params != nil {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
