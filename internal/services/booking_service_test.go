package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/motomeet/mm/internal/models"
)

func TestJoinRideCreatesPendingBooking(t *testing.T) {
	rides := newFakeRideRepo()
	rideID := rides.seed(uuid.New(), models.RideScheduled)
	svc := NewBookingService(newFakeBookingRepo(), rides)
	riderID := uuid.New()

	booking, err := svc.JoinRide(context.Background(), riderIdentity(riderID), rideID)
	if err != nil {
		t.Fatalf("JoinRide failed: %v", err)
	}
	if booking.Status != models.BookingPending {
		t.Errorf("status = %s, want pending", booking.Status)
	}
	if booking.RideID != rideID || booking.RiderID != riderID {
		t.Errorf("booking links wrong: %+v", booking)
	}
}

func TestJoinRideClosedRides(t *testing.T) {
	for _, status := range []models.RideStatus{models.RideCompleted, models.RideCancelled} {
		rides := newFakeRideRepo()
		rideID := rides.seed(uuid.New(), status)
		svc := NewBookingService(newFakeBookingRepo(), rides)

		_, err := svc.JoinRide(context.Background(), riderIdentity(uuid.New()), rideID)
		if !apperr.Is(err, apperr.KindBadRequest) {
			t.Errorf("joining a %s ride: kind = %s, want %s", status, apperr.KindOf(err), apperr.KindBadRequest)
		}
	}
}

func TestJoinRideDuplicateConflict(t *testing.T) {
	rides := newFakeRideRepo()
	rideID := rides.seed(uuid.New(), models.RideScheduled)
	svc := NewBookingService(newFakeBookingRepo(), rides)
	rider := riderIdentity(uuid.New())

	if _, err := svc.JoinRide(context.Background(), rider, rideID); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	_, err := svc.JoinRide(context.Background(), rider, rideID)
	if !apperr.Is(err, apperr.KindConflict) {
		t.Errorf("kind = %s, want %s", apperr.KindOf(err), apperr.KindConflict)
	}
}

func TestListForRideRequiresCreatorOrModerator(t *testing.T) {
	rides := newFakeRideRepo()
	creatorID := uuid.New()
	rideID := rides.seed(creatorID, models.RideScheduled)
	svc := NewBookingService(newFakeBookingRepo(), rides)
	page := models.NormalizePagination(1, 20)

	if _, _, err := svc.ListForRide(context.Background(), riderIdentity(uuid.New()), rideID, page); !apperr.Is(err, apperr.KindForbidden) {
		t.Errorf("stranger list: kind = %s, want %s", apperr.KindOf(err), apperr.KindForbidden)
	}

	if _, _, err := svc.ListForRide(context.Background(), riderIdentity(creatorID), rideID, page); err != nil {
		t.Errorf("creator list failed: %v", err)
	}
}

func TestUpdateBookingRiderCanOnlyCancel(t *testing.T) {
	rides := newFakeRideRepo()
	rideID := rides.seed(uuid.New(), models.RideScheduled)
	bookings := newFakeBookingRepo()
	svc := NewBookingService(bookings, rides)
	rider := riderIdentity(uuid.New())

	booking, err := svc.JoinRide(context.Background(), rider, rideID)
	if err != nil {
		t.Fatalf("JoinRide failed: %v", err)
	}

	// Self-confirming is not allowed.
	_, err = svc.UpdateBooking(context.Background(), rider, booking.ID, &models.UpdateBookingInput{Status: models.BookingConfirmed})
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Errorf("rider confirm: kind = %s, want %s", apperr.KindOf(err), apperr.KindForbidden)
	}

	updated, err := svc.UpdateBooking(context.Background(), rider, booking.ID, &models.UpdateBookingInput{Status: models.BookingCancelled})
	if err != nil {
		t.Fatalf("rider cancel failed: %v", err)
	}
	if updated.Status != models.BookingCancelled {
		t.Errorf("status = %s, want cancelled", updated.Status)
	}
}

func TestUpdateBookingCreatorSetsAnyStatus(t *testing.T) {
	rides := newFakeRideRepo()
	creatorID := uuid.New()
	rideID := rides.seed(creatorID, models.RideScheduled)
	bookings := newFakeBookingRepo()
	svc := NewBookingService(bookings, rides)

	booking, err := svc.JoinRide(context.Background(), riderIdentity(uuid.New()), rideID)
	if err != nil {
		t.Fatalf("JoinRide failed: %v", err)
	}

	updated, err := svc.UpdateBooking(context.Background(), riderIdentity(creatorID), booking.ID, &models.UpdateBookingInput{Status: models.BookingConfirmed})
	if err != nil {
		t.Fatalf("creator confirm failed: %v", err)
	}
	if updated.Status != models.BookingConfirmed {
		t.Errorf("status = %s, want confirmed", updated.Status)
	}
}

func TestUpdateBookingStrangerForbidden(t *testing.T) {
	rides := newFakeRideRepo()
	rideID := rides.seed(uuid.New(), models.RideScheduled)
	bookings := newFakeBookingRepo()
	svc := NewBookingService(bookings, rides)

	booking, err := svc.JoinRide(context.Background(), riderIdentity(uuid.New()), rideID)
	if err != nil {
		t.Fatalf("JoinRide failed: %v", err)
	}

	_, err = svc.UpdateBooking(context.Background(), riderIdentity(uuid.New()), booking.ID, &models.UpdateBookingInput{Status: models.BookingCancelled})
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Errorf("kind = %s, want %s", apperr.KindOf(err), apperr.KindForbidden)
	}
}

func TestListForRider(t *testing.T) {
	rides := newFakeRideRepo()
	rideA := rides.seed(uuid.New(), models.RideScheduled)
	rideB := rides.seed(uuid.New(), models.RideScheduled)
	bookings := newFakeBookingRepo()
	svc := NewBookingService(bookings, rides)
	rider := riderIdentity(uuid.New())

	if _, err := svc.JoinRide(context.Background(), rider, rideA); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.JoinRide(context.Background(), rider, rideB); err != nil {
		t.Fatal(err)
	}

	list, meta, err := svc.ListForRider(context.Background(), rider.ID, models.NormalizePagination(1, 20))
	if err != nil {
		t.Fatalf("ListForRider failed: %v", err)
	}
	if len(list) != 2 || meta.Total != 2 {
		t.Errorf("got %d bookings (total %d), want 2", len(list), meta.Total)
	}
}
