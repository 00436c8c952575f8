package models

import (
	"context"

	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/supabase-community/postgrest-go"
)

type RideRepo interface {
	CreateRide(ctx context.Context, row map[string]interface{}) (*Ride, error)
	GetRideByID(ctx context.Context, id uuid.UUID) (*Ride, error)
	ListRides(ctx context.Context, filter RideListFilter, page Pagination) ([]Ride, int64, error)
	UpdateRide(ctx context.Context, id uuid.UUID, row map[string]interface{}) (*Ride, error)
	DeleteRide(ctx context.Context, id uuid.UUID) error
}

func (su *SupabaseRepo) CreateRide(ctx context.Context, row map[string]interface{}) (*Ride, error) {
	raw, _, err := su.client.From(RidesTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	rides, err := DecodeRideRows(raw)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(rides) == 0 {
		return nil, apperr.NotFound("no ride returned after insert")
	}
	return &rides[0], nil
}

func (su *SupabaseRepo) GetRideByID(ctx context.Context, id uuid.UUID) (*Ride, error) {
	if id == uuid.Nil {
		return nil, apperr.BadRequest("invalid ride id")
	}

	raw, _, err := su.client.From(RidesTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	rides, err := DecodeRideRows(raw)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(rides) == 0 {
		return nil, apperr.NotFound("ride not found")
	}
	return &rides[0], nil
}

// ListRides returns a page of rides ordered by creation time descending,
// newest first, with the exact total for pagination metadata.
func (su *SupabaseRepo) ListRides(ctx context.Context, filter RideListFilter, page Pagination) ([]Ride, int64, error) {
	query := su.client.From(RidesTable).Select("*", "exact", false)
	if filter.Status != "" {
		query = query.Eq("status", filter.Status)
	}
	if filter.Pace != "" {
		query = query.Eq("pace", filter.Pace)
	}
	if filter.ExperienceLevel != "" {
		query = query.Eq("experience_level", filter.ExperienceLevel)
	}

	from, to := page.Range()
	raw, total, err := query.
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(from, to, "").
		Execute()
	if err != nil {
		return nil, 0, storageErr(err)
	}

	rides, err := DecodeRideRows(raw)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return rides, total, nil
}

func (su *SupabaseRepo) UpdateRide(ctx context.Context, id uuid.UUID, row map[string]interface{}) (*Ride, error) {
	if id == uuid.Nil {
		return nil, apperr.BadRequest("invalid ride id")
	}
	if len(row) == 0 {
		return nil, apperr.BadRequest("no fields to update")
	}

	raw, count, err := su.client.From(RidesTable).
		Update(row, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}
	if count == 0 {
		return nil, apperr.NotFound("ride not found")
	}

	rides, err := DecodeRideRows(raw)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(rides) == 0 {
		return nil, apperr.NotFound("no ride returned after update")
	}
	return &rides[0], nil
}

func (su *SupabaseRepo) DeleteRide(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.BadRequest("invalid ride id")
	}

	_, count, err := su.client.From(RidesTable).
		Delete("", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return storageErr(err)
	}
	if count == 0 {
		return apperr.NotFound("ride not found")
	}
	return nil
}
