package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/motomeet/mm/internal/helpers"
	"github.com/motomeet/mm/internal/services"
)

// StartPhoneAuth requests an OTP for a phone number, creating a provider
// identity on the fly for unregistered numbers.
func StartPhoneAuth(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Phone string `json:"phone" binding:"required,e164"`
		}
		if !bindJSON(c, &input) {
			return
		}

		result, err := a.StartPhoneAuth(c.Request.Context(), input.Phone)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, result)
	}
}

// VerifyPhoneAuth checks the 6-digit code and returns identity, profile
// and session tokens. First-time verifications create the profile.
func VerifyPhoneAuth(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Phone string `json:"phone" binding:"required,e164"`
			Code  string `json:"code" binding:"required,len=6,number"`
		}
		if !bindJSON(c, &input) {
			return
		}

		result, err := a.VerifyPhoneAuth(c.Request.Context(), input.Phone, input.Code)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, result)
	}
}

func RefreshSession(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			RefreshToken string `json:"refreshToken" binding:"required"`
		}
		if !bindJSON(c, &input) {
			return
		}

		session, err := a.Refresh(c.Request.Context(), input.RefreshToken)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, session)
	}
}

func Logout(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := helpers.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			respondErr(c, apperr.Unauthorized(err.Error()))
			return
		}

		if err := a.Logout(c.Request.Context(), token); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
