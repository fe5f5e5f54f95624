package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_CapturesStatusAndBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusNotFound)
	n, err := rw.Write([]byte("missing"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("statusCode = %d, want 404", rw.statusCode)
	}
	if rw.written != int64(n) {
		t.Errorf("written = %d, want %d", rw.written, n)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("underlying status = %d, want 404", rec.Code)
	}
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())
	_, _ = rw.Write([]byte("ok"))

	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode = %d, want implicit 200", rw.statusCode)
	}
	if !rw.headerWritten {
		t.Error("headerWritten = false after Write")
	}
}

func TestResponseWriter_IgnoresSecondWriteHeader(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusCreated {
		t.Errorf("statusCode = %d, want first write 201", rw.statusCode)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("underlying status = %d, want 201", rec.Code)
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
