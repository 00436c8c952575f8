package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motomeet/mm/internal/models"
	"github.com/motomeet/mm/internal/services"
)

func CreateRide(r *services.RideService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}

		var input models.CreateRideInput
		if !bindJSON(c, &input) {
			return
		}

		ride, err := r.CreateRide(c.Request.Context(), identity.ID, &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusCreated, ride)
	}
}

func ListRides(r *services.RideService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.RideListFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			respondErr(c, models.AsValidationError(err))
			return
		}

		rides, meta, err := r.ListRides(c.Request.Context(), filter)
		if err != nil {
			respondErr(c, err)
			return
		}
		respondPage(c, rides, meta)
	}
}

func GetRide(r *services.RideService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		ride, err := r.GetRide(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, ride)
	}
}

func UpdateRide(r *services.RideService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		var input models.UpdateRideInput
		if !bindJSON(c, &input) {
			return
		}

		ride, err := r.UpdateRide(c.Request.Context(), identity, id, &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, ride)
	}
}

func CancelRide(r *services.RideService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		ride, err := r.CancelRide(c.Request.Context(), identity, id)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, ride)
	}
}

func DeleteRide(r *services.RideService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		if err := r.DeleteRide(c.Request.Context(), identity, id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
