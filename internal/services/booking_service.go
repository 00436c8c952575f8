package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/motomeet/mm/internal/helpers"
	"github.com/motomeet/mm/internal/models"
)

type BookingService struct {
	bookingRepo models.BookingRepo
	rideRepo    models.RideRepo
}

func NewBookingService(bookingRepo models.BookingRepo, rideRepo models.RideRepo) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		rideRepo:    rideRepo,
	}
}

// JoinRide books the caller onto a ride. A rider can hold at most one
// booking per ride.
func (bs *BookingService) JoinRide(ctx context.Context, identity *helpers.AuthIdentity, rideID uuid.UUID) (*models.Booking, error) {
	ride, err := bs.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status == models.RideCompleted || ride.Status == models.RideCancelled {
		return nil, apperr.BadRequest("ride is no longer open for booking")
	}

	if _, err := bs.bookingRepo.GetBookingForRider(ctx, rideID, identity.ID); err == nil {
		return nil, apperr.Conflict("already booked on this ride")
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	row := models.BookingFields.ToRow(map[string]interface{}{
		"id":        uuid.New().String(),
		"rideId":    rideID.String(),
		"riderId":   identity.ID.String(),
		"status":    models.BookingPending,
		"createdAt": now,
		"updatedAt": now,
	})
	return bs.bookingRepo.CreateBooking(ctx, row)
}

// ListForRide returns a ride's bookings; only the ride creator (or a
// moderator) may see them.
func (bs *BookingService) ListForRide(ctx context.Context, identity *helpers.AuthIdentity, rideID uuid.UUID, page models.Pagination) ([]models.Booking, *models.Meta, error) {
	ride, err := bs.rideRepo.GetRideByID(ctx, rideID)
	if err != nil {
		return nil, nil, err
	}
	if !identity.IsOwner(ride.CreatorID) && !identity.CanModerate() {
		return nil, nil, apperr.Forbidden("only the ride creator can view bookings")
	}

	bookings, total, err := bs.bookingRepo.ListBookingsByRide(ctx, rideID, page)
	if err != nil {
		return nil, nil, err
	}
	return bookings, models.NewMeta(page.Page, page.Limit, total), nil
}

func (bs *BookingService) ListForRider(ctx context.Context, riderID uuid.UUID, page models.Pagination) ([]models.Booking, *models.Meta, error) {
	bookings, total, err := bs.bookingRepo.ListBookingsByRider(ctx, riderID, page)
	if err != nil {
		return nil, nil, err
	}
	return bookings, models.NewMeta(page.Page, page.Limit, total), nil
}

// UpdateBooking changes a booking's status. The ride creator may set
// any status; the booking's own rider may only cancel.
func (bs *BookingService) UpdateBooking(ctx context.Context, identity *helpers.AuthIdentity, bookingID uuid.UUID, input *models.UpdateBookingInput) (*models.Booking, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.AsValidationError(err)
	}

	booking, err := bs.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	ride, err := bs.rideRepo.GetRideByID(ctx, booking.RideID)
	if err != nil {
		return nil, err
	}

	isCreator := identity.IsOwner(ride.CreatorID)
	isRiderCancelling := identity.IsOwner(booking.RiderID) && input.Status == models.BookingCancelled
	if !isCreator && !isRiderCancelling {
		return nil, apperr.Forbidden("not permitted to change this booking")
	}

	row := models.BookingFields.ToRow(map[string]interface{}{
		"status":    input.Status,
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	})
	return bs.bookingRepo.UpdateBooking(ctx, bookingID, row)
}
