package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	adapthttp "github.com/taskvault/taskvault/internal/adapters/http"
	"github.com/taskvault/taskvault/internal/adapters/http/handlers"
	"github.com/taskvault/taskvault/internal/adapters/http/middleware"
	"github.com/taskvault/taskvault/internal/auth"
	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/platform/health"
	"github.com/taskvault/taskvault/internal/ports"
)

var testSecret = []byte("router-test-secret")

// listOnlyService satisfies ports.TaskService for routing tests; only
// ListTasks returns data, everything else reports not found.
type listOnlyService struct{}

func (listOnlyService) CreateTask(context.Context, auth.Principal, ports.CreateTaskInput) domain.Result[ports.TaskDTO] {
	return domain.Fail[ports.TaskDTO](domain.CodeNotFound, "Task not found")
}

func (listOnlyService) UpdateTask(context.Context, auth.Principal, uuid.UUID, ports.UpdateTaskInput) domain.Result[ports.TaskDTO] {
	return domain.Fail[ports.TaskDTO](domain.CodeNotFound, "Task not found")
}

func (listOnlyService) DeleteTask(context.Context, auth.Principal, uuid.UUID) domain.Result[struct{}] {
	return domain.Fail[struct{}](domain.CodeNotFound, "Task not found")
}

func (listOnlyService) GetTaskByID(context.Context, auth.Principal, uuid.UUID) domain.Result[ports.TaskDTO] {
	return domain.Fail[ports.TaskDTO](domain.CodeNotFound, "Task not found")
}

func (listOnlyService) ListTasks(context.Context, auth.Principal, ports.ListTasksInput) domain.Result[domain.Page[ports.TaskDTO]] {
	return domain.Ok(domain.Page[ports.TaskDTO]{Items: []ports.TaskDTO{}, Page: 1, PageSize: 20})
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	th := handlers.NewTaskHandler(listOnlyService{})
	hh := handlers.NewHealthHandler(health.New())
	authMW := middleware.Auth(testSecret, "", nil)

	return adapthttp.NewRouter(th, hh, authMW)
}

func bearerToken(t *testing.T) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return "Bearer " + token
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks"},
		{http.MethodGet, "/api/v1/tasks/{id}"},
		{http.MethodPatch, "/api/v1/tasks/{id}"},
		{http.MethodDelete, "/api/v1/tasks/{id}"},
	}

	chiRouter, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router is not a chi.Router")
	}

	for _, route := range expectedRoutes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			t.Parallel()
			tctx := chi.NewRouteContext()
			if !chiRouter.Match(tctx, route.method, route.path) {
				t.Errorf("route %s %s is not registered", route.method, route.path)
			}
		})
	}
}

func TestRouter_HealthEndpointsSkipAuth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s without credentials = %d, want 200", path, rec.Code)
		}
	}
}

func TestRouter_APIRequiresAuth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("GET /api/v1/tasks without credentials = %d, want 401", rec.Code)
	}
}

func TestRouter_APIWithValidToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /api/v1/tasks with token = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope = %d, want 404", rec.Code)
	}
}
