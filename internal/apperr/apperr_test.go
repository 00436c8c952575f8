package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("bad", nil), http.StatusBadRequest},
		{BadRequest("bad"), http.StatusBadRequest},
		{Unauthorized("nope"), http.StatusUnauthorized},
		{Forbidden("nope"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := Status(tc.err); got != tc.want {
			t.Errorf("Status(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestInternalWrapsUnderlying(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	if !errors.Is(err, cause) {
		t.Error("Internal should keep the cause reachable via errors.Is")
	}
	if want := "operation failed: connection refused"; err.Message != want {
		t.Errorf("message = %q, want %q", err.Message, want)
	}
}

func TestKindOfSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("outer context: %w", NotFound("ride not found"))

	if KindOf(err) != KindNotFound {
		t.Errorf("KindOf(wrapped) = %s, want %s", KindOf(err), KindNotFound)
	}
	if !Is(err, KindNotFound) {
		t.Error("Is should see through fmt.Errorf wrapping")
	}
}

func TestKindOfPlainError(t *testing.T) {
	if KindOf(errors.New("anything")) != KindInternal {
		t.Error("plain errors should default to internal")
	}
}
