// Package handlers implements the inbound HTTP handlers. Handlers are thin:
// they decode and validate the payload, resolve the verified caller, call
// the service port, and translate the Result envelope into an HTTP response.
package handlers

import (
	"net/http"

	"github.com/taskvault/taskvault/internal/adapters/http/dto"
	"github.com/taskvault/taskvault/internal/ports"
)

// TaskHandler handles HTTP requests for task CRUD operations.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.svc.CreateTask(r.Context(), caller, req.ToInput())
	if !res.OK() {
		dto.WriteErrorResponse(w, r, res.Err())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(res.Value()))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res := h.svc.GetTaskByID(r.Context(), caller, id)
	if !res.OK() {
		dto.WriteErrorResponse(w, r, res.Err())
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(res.Value()))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res := h.svc.UpdateTask(r.Context(), caller, id, req.ToInput())
	if !res.OK() {
		dto.WriteErrorResponse(w, r, res.Err())
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(res.Value()))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res := h.svc.DeleteTask(r.Context(), caller, id)
	if !res.OK() {
		dto.WriteErrorResponse(w, r, res.Err())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTasks handles GET /api/v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFrom(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	in, err := parseListQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res := h.svc.ListTasks(r.Context(), caller, in)
	if !res.OK() {
		dto.WriteErrorResponse(w, r, res.Err())
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskPageResponse(res.Value()))
}
