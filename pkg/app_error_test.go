package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Proposal not found", http.StatusNotFound)
		if e.Error() != "NOT_FOUND: Proposal not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if got := e.ToHTTPError(); got.Code != "NOT_FOUND" || got.Message != "Proposal not found" {
			t.Fatalf("unexpected http error %+v", got)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("unexpected status %d", e.HTTPStatus)
		}
	})
}
