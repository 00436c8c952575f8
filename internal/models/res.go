package models

import "github.com/motomeet/mm/internal/apperr"

// ApiResponse is the uniform envelope every endpoint returns.
type ApiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ApiError   `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type ApiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type Meta struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"hasMore"`
}

func SuccessResponse(data interface{}) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
	}
}

func ErrorResponse(err error) ApiResponse {
	var details interface{}
	if ae, ok := err.(*apperr.Error); ok {
		details = ae.Details
	}
	return ApiResponse{
		Success: false,
		Error: &ApiError{
			Code:    string(apperr.KindOf(err)),
			Message: err.Error(),
			Details: details,
		},
	}
}

func PaginatedResponse(data interface{}, page, limit int, total int64) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Meta:    NewMeta(page, limit, total),
	}
}

func NewMeta(page, limit int, total int64) *Meta {
	return &Meta{
		Page:    page,
		Limit:   limit,
		Total:   total,
		HasMore: int64(page)*int64(limit) < total,
	}
}

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pagination holds normalized page/limit values parsed from the query
// string. Defaults apply when a value is omitted or out of range.
type Pagination struct {
	Page  int
	Limit int
}

func NormalizePagination(page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// Range returns the inclusive PostgREST row range for this page.
func (p Pagination) Range() (int, int) {
	from := (p.Page - 1) * p.Limit
	return from, from + p.Limit - 1
}
