package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motomeet/mm/internal/models"
	"github.com/motomeet/mm/internal/services"
)

// CreateProfile creates the caller's profile; the id is always the
// authenticated identity's id.
func CreateProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}

		var input models.CreateProfileInput
		if !bindJSON(c, &input) {
			return
		}

		profile, err := p.CreateProfile(c.Request.Context(), identity.ID, "", &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusCreated, profile)
	}
}

func GetMyProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}

		profile, err := p.GetProfile(c.Request.Context(), identity.ID)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, profile)
	}
}

func GetProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		profile, err := p.GetProfile(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, profile)
	}
}

func UpdateMyProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}

		var input models.UpdateProfileInput
		if !bindJSON(c, &input) {
			return
		}

		profile, err := p.UpdateProfile(c.Request.Context(), identity.ID, &input)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, profile)
	}
}

// CheckHandle probes handle availability before a claim attempt.
func CheckHandle(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		available, err := p.HandleAvailable(c.Request.Context(), c.Query("handle"))
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"available": available})
	}
}

func UploadAvatar(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			return
		}

		var input struct {
			Image string `json:"image" binding:"required"`
		}
		if !bindJSON(c, &input) {
			return
		}

		profile, err := p.UpdateAvatar(c.Request.Context(), identity.ID, input.Image)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, profile)
	}
}
