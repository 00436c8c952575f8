package models

import (
	"testing"

	"github.com/motomeet/mm/internal/apperr"
)

func TestHasMoreProperty(t *testing.T) {
	cases := []struct {
		page, limit int
		total       int64
		want        bool
	}{
		{1, 20, 0, false},
		{1, 20, 20, false},
		{1, 20, 21, true},
		{2, 20, 40, false},
		{2, 20, 41, true},
		{3, 10, 25, false},
		{1, 100, 1000, true},
		{10, 100, 1000, false},
	}

	for _, tc := range cases {
		meta := NewMeta(tc.page, tc.limit, tc.total)
		if meta.HasMore != tc.want {
			t.Errorf("NewMeta(%d, %d, %d).HasMore = %v, want %v",
				tc.page, tc.limit, tc.total, meta.HasMore, tc.want)
		}
	}
}

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 20},
		{-5, -1, 1, 20},
		{3, 50, 3, 50},
		{1, 100, 1, 100},
		{1, 101, 1, 100},
		{2, 1000, 2, 100},
	}

	for _, tc := range cases {
		p := NormalizePagination(tc.page, tc.limit)
		if p.Page != tc.wantPage || p.Limit != tc.wantLimit {
			t.Errorf("NormalizePagination(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.limit, p.Page, p.Limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestPaginationRange(t *testing.T) {
	p := Pagination{Page: 1, Limit: 20}
	if from, to := p.Range(); from != 0 || to != 19 {
		t.Errorf("page 1 range = (%d, %d), want (0, 19)", from, to)
	}

	p = Pagination{Page: 3, Limit: 10}
	if from, to := p.Range(); from != 20 || to != 29 {
		t.Errorf("page 3 range = (%d, %d), want (20, 29)", from, to)
	}
}

func TestErrorResponseEnvelope(t *testing.T) {
	res := ErrorResponse(apperr.Conflict("handle already taken"))

	if res.Success {
		t.Error("error responses must not be successful")
	}
	if res.Error == nil {
		t.Fatal("error body missing")
	}
	if res.Error.Code != "CONFLICT" {
		t.Errorf("code = %q, want CONFLICT", res.Error.Code)
	}
	if res.Error.Message != "handle already taken" {
		t.Errorf("message = %q", res.Error.Message)
	}
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	details := []FieldViolation{{Field: "maxRiders", Rule: "max", Param: "50"}}
	res := ErrorResponse(apperr.Validation("invalid request payload", details))

	if res.Error.Details == nil {
		t.Error("validation details should be carried into the envelope")
	}
}
