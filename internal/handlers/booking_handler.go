package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motomeet/mm/internal/models"
	"github.com/motomeet/mm/internal/services"
)

func JoinRide(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		rideID, ok := pathID(c, "id")
		if !ok {
			return
		}

		booking, err := b.JoinRide(c.Request.Context(), identity, rideID)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusCreated, booking)
	}
}

func ListRideBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		rideID, ok := pathID(c, "id")
		if !ok {
			return
		}

		bookings, meta, err := b.ListForRide(c.Request.Context(), identity, rideID, pagination(c))
		if err != nil {
			respondErr(c, err)
			return
		}
		respondPage(c, bookings, meta)
	}
}

func ListMyBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}

		bookings, meta, err := b.ListForRider(c.Request.Context(), identity.ID, pagination(c))
		if err != nil {
			respondErr(c, err)
			return
		}
		respondPage(c, bookings, meta)
	}
}

func UpdateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input models.UpdateBookingInput
		if !bindJSON(c, &input) {
			return
		}

		booking, err := b.UpdateBooking(c.Request.Context(), identity, id, &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, booking)
	}
}
