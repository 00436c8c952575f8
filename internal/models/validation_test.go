package models

import (
	"errors"
	"testing"
	"time"

	"github.com/motomeet/mm/internal/apperr"
)

func mustRegister(t *testing.T) {
	t.Helper()
	if err := RegisterCustomValidators(); err != nil {
		t.Fatalf("RegisterCustomValidators failed: %v", err)
	}
}

func TestHandleValidation(t *testing.T) {
	mustRegister(t)

	type payload struct {
		Handle string `binding:"handle"`
	}

	valid := []string{"ada", "rider_42", "A_B_C", "abcdefghijklmnopqrstuvwxyz1234"}
	for _, h := range valid {
		if err := Validate.Struct(payload{Handle: h}); err != nil {
			t.Errorf("handle %q should be valid: %v", h, err)
		}
	}

	invalid := []string{"ab", "has space", "dash-ed", "über", "", "abcdefghijklmnopqrstuvwxyz12345"}
	for _, h := range invalid {
		if err := Validate.Struct(payload{Handle: h}); err == nil {
			t.Errorf("handle %q should be rejected", h)
		}
	}
}

func TestModelYearValidation(t *testing.T) {
	mustRegister(t)

	type payload struct {
		Year int `binding:"modelyear"`
	}

	nextYear := time.Now().Year() + 1
	for _, y := range []int{1960, 1999, time.Now().Year(), nextYear} {
		if err := Validate.Struct(payload{Year: y}); err != nil {
			t.Errorf("year %d should be valid: %v", y, err)
		}
	}
	for _, y := range []int{1959, 1900, 0, nextYear + 1} {
		if err := Validate.Struct(payload{Year: y}); err == nil {
			t.Errorf("year %d should be rejected", y)
		}
	}
}

// Every failed constraint must surface as its own detail entry, not just
// the first one the validator hits.
func TestAsValidationErrorEnumeratesViolations(t *testing.T) {
	mustRegister(t)

	input := CreateProfileInput{DisplayName: ""}
	badHandle := "x"
	input.Handle = &badHandle
	badCountry := "GBR"
	input.CountryCode = &badCountry

	err := Validate.Struct(input)
	if err == nil {
		t.Fatal("expected validation failure")
	}

	converted := AsValidationError(err)
	if apperr.KindOf(converted) != apperr.KindValidation {
		t.Fatalf("kind = %s, want %s", apperr.KindOf(converted), apperr.KindValidation)
	}

	var appErr *apperr.Error
	if !errors.As(converted, &appErr) {
		t.Fatal("converted error is not an *apperr.Error")
	}
	details, ok := appErr.Details.([]FieldViolation)
	if !ok {
		t.Fatalf("details type = %T, want []FieldViolation", appErr.Details)
	}
	if len(details) != 3 {
		t.Errorf("got %d violations, want 3: %+v", len(details), details)
	}
}

func TestAsValidationErrorFallsBackToBadRequest(t *testing.T) {
	converted := AsValidationError(errEOF{})
	if apperr.KindOf(converted) != apperr.KindBadRequest {
		t.Errorf("kind = %s, want %s", apperr.KindOf(converted), apperr.KindBadRequest)
	}
}

type errEOF struct{}

func (errEOF) Error() string { return "unexpected EOF" }
