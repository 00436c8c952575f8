package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingWaitlisted BookingStatus = "waitlisted"
	BookingCancelled  BookingStatus = "cancelled"
)

// Booking links a rider to a ride. The (ride, rider) pair is unique.
type Booking struct {
	ID        uuid.UUID     `json:"id"`
	RideID    uuid.UUID     `json:"rideId"`
	RiderID   uuid.UUID     `json:"riderId"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

var BookingFields = FieldMap{
	"id":        "id",
	"rideId":    "ride_id",
	"riderId":   "rider_id",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type UpdateBookingInput struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending confirmed waitlisted cancelled"`
}
