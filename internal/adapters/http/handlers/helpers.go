package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/adapters/http/dto"
	"github.com/taskvault/taskvault/internal/auth"
	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/domain/task"
	"github.com/taskvault/taskvault/internal/ports"
)

// parseUUID extracts a UUID path parameter from the chi URL params.
func parseUUID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid UUID"},
		}
	}
	return id, nil
}

// callerFrom extracts the verified principal placed in the context by the
// auth middleware. A missing principal means the route was wired without
// the middleware; surface it as unauthenticated rather than panicking.
func callerFrom(r *http.Request) (auth.Principal, error) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		return auth.Principal{}, fmt.Errorf("no verified caller: %w", domain.ErrUnauthenticated)
	}
	return p, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns
// false. The body is limited to maxJSONBodyBytes.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// Defaults for the list query paging window.
const (
	defaultPage     = 1
	defaultPageSize = 20
)

// parseListQuery builds the list input from query parameters. Unknown enum
// values and non-numeric paging parameters are validation errors; absent
// parameters fall back to defaults.
func parseListQuery(r *http.Request) (ports.ListTasksInput, error) {
	in := ports.ListTasksInput{Page: defaultPage, PageSize: defaultPageSize}
	fields := make(map[string]string)
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields["page"] = "must be an integer"
		} else {
			in.Page = n
		}
	}
	if raw := q.Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields["page_size"] = "must be an integer"
		} else {
			in.PageSize = n
		}
	}
	if raw := q.Get("status"); raw != "" {
		s := task.Status(raw)
		if !s.IsValid() {
			fields["status"] = fmt.Sprintf("invalid: %q", raw)
		} else {
			in.Status = &s
		}
	}
	if raw := q.Get("priority"); raw != "" {
		p := task.Priority(raw)
		if !p.IsValid() {
			fields["priority"] = fmt.Sprintf("invalid: %q", raw)
		} else {
			in.Priority = &p
		}
	}

	if len(fields) > 0 {
		return ports.ListTasksInput{}, &domain.ValidationError{Fields: fields}
	}
	return in, nil
}
