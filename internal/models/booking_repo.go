package models

import (
	"context"

	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/supabase-community/postgrest-go"
)

type BookingRepo interface {
	CreateBooking(ctx context.Context, row map[string]interface{}) (*Booking, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetBookingForRider(ctx context.Context, rideID, riderID uuid.UUID) (*Booking, error)
	ListBookingsByRide(ctx context.Context, rideID uuid.UUID, page Pagination) ([]Booking, int64, error)
	ListBookingsByRider(ctx context.Context, riderID uuid.UUID, page Pagination) ([]Booking, int64, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, row map[string]interface{}) (*Booking, error)
}

func (su *SupabaseRepo) CreateBooking(ctx context.Context, row map[string]interface{}) (*Booking, error) {
	raw, _, err := su.client.From(BookingsTable).
		Insert(row, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	bookings, err := DecodeRows[Booking](raw, BookingFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(bookings) == 0 {
		return nil, apperr.NotFound("no booking returned after insert")
	}
	return &bookings[0], nil
}

func (su *SupabaseRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	if id == uuid.Nil {
		return nil, apperr.BadRequest("invalid booking id")
	}

	raw, _, err := su.client.From(BookingsTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	bookings, err := DecodeRows[Booking](raw, BookingFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(bookings) == 0 {
		return nil, apperr.NotFound("booking not found")
	}
	return &bookings[0], nil
}

// GetBookingForRider finds the unique (ride, rider) booking if any.
func (su *SupabaseRepo) GetBookingForRider(ctx context.Context, rideID, riderID uuid.UUID) (*Booking, error) {
	raw, _, err := su.client.From(BookingsTable).
		Select("*", "", false).
		Eq("ride_id", rideID.String()).
		Eq("rider_id", riderID.String()).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}

	bookings, err := DecodeRows[Booking](raw, BookingFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(bookings) == 0 {
		return nil, apperr.NotFound("booking not found")
	}
	return &bookings[0], nil
}

func (su *SupabaseRepo) ListBookingsByRide(ctx context.Context, rideID uuid.UUID, page Pagination) ([]Booking, int64, error) {
	return su.listBookings(ctx, "ride_id", rideID, page)
}

func (su *SupabaseRepo) ListBookingsByRider(ctx context.Context, riderID uuid.UUID, page Pagination) ([]Booking, int64, error) {
	return su.listBookings(ctx, "rider_id", riderID, page)
}

func (su *SupabaseRepo) listBookings(ctx context.Context, column string, id uuid.UUID, page Pagination) ([]Booking, int64, error) {
	if id == uuid.Nil {
		return nil, 0, apperr.BadRequest("invalid id")
	}

	from, to := page.Range()
	raw, total, err := su.client.From(BookingsTable).
		Select("*", "exact", false).
		Eq(column, id.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(from, to, "").
		Execute()
	if err != nil {
		return nil, 0, storageErr(err)
	}

	bookings, err := DecodeRows[Booking](raw, BookingFields)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return bookings, total, nil
}

func (su *SupabaseRepo) UpdateBooking(ctx context.Context, id uuid.UUID, row map[string]interface{}) (*Booking, error) {
	if id == uuid.Nil {
		return nil, apperr.BadRequest("invalid booking id")
	}

	raw, count, err := su.client.From(BookingsTable).
		Update(row, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, storageErr(err)
	}
	if count == 0 {
		return nil, apperr.NotFound("booking not found")
	}

	bookings, err := DecodeRows[Booking](raw, BookingFields)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(bookings) == 0 {
		return nil, apperr.NotFound("no booking returned after update")
	}
	return &bookings[0], nil
}
