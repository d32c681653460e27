package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	withCause := NewDomainError("INTERNAL_ERROR", "boom", errors.New("db down"), http.StatusInternalServerError)
	if withCause.Error() != "INTERNAL_ERROR: boom: db down" {
		t.Fatalf("unexpected message %q", withCause.Error())
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "missing", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: missing" {
		t.Fatalf("unexpected message %q", simple.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("db down")
	err := NewDomainError("INTERNAL_ERROR", "boom", cause, http.StatusInternalServerError)
	if !errors.Is(err, cause) {
		t.Fatalf("expected unwrap to reach the cause")
	}
}

func TestAppError_ToHTTPError(t *testing.T) {
	err := NewDomainError("INTERNAL_ERROR", "boom", errors.New("db down"), http.StatusInternalServerError)
	body := err.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "boom" {
		t.Fatalf("unexpected body %+v", body)
	}
}
