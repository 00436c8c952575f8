package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/motomeet/mm/internal/helpers"
	"github.com/motomeet/mm/internal/models"
)

// IdentityKey is the context key the auth middleware stores the resolved
// identity under.
const IdentityKey = "identity"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", method,
			"path", path,
			"status", statusCode,
			"latency", latency,
			"client_ip", clientIP,
		)
	}
}

// ErrorHandler converts any error that escaped a handler into the
// envelope. Handlers normally respond themselves; this is the backstop.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			if !c.Writer.Written() {
				c.JSON(apperr.Status(err), models.ErrorResponse(err))
			}
		}
	}
}

// ProfileRoleLookup resolves a role for an authenticated subject.
type ProfileRoleLookup interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// RequireAuth verifies the bearer token against the auth provider's
// keys, then resolves the role from the profile store. A missing profile
// row is a 404, everything else on the credential path is a 401.
func RequireAuth(verifier *helpers.TokenVerifier, profiles ProfileRoleLookup, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := resolveIdentity(c, verifier, profiles)
		if err != nil {
			logger.Info("Authentication failed",
				"path", c.Request.URL.Path,
				"error", err.Error(),
			)
			c.AbortWithStatusJSON(apperr.Status(err), models.ErrorResponse(err))
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// OptionalAuth runs the same verification path but proceeds anonymously
// on any failure instead of rejecting the request.
func OptionalAuth(verifier *helpers.TokenVerifier, profiles ProfileRoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := resolveIdentity(c, verifier, profiles)
		if err == nil {
			c.Set(IdentityKey, identity)
		}
		c.Next()
	}
}

func resolveIdentity(c *gin.Context, verifier *helpers.TokenVerifier, profiles ProfileRoleLookup) (*helpers.AuthIdentity, error) {
	token, err := helpers.BearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return nil, apperr.Unauthorized(err.Error())
	}

	claims, err := verifier.Validate(token)
	if err != nil {
		return nil, apperr.Unauthorized("invalid or expired token")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperr.Unauthorized("invalid subject in token")
	}

	profile, err := profiles.GetProfile(c.Request.Context(), subject)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.NotFound("profile not found for authenticated user")
		}
		return nil, err
	}

	return &helpers.AuthIdentity{
		ID:    subject,
		Email: claims.Email,
		Role:  profile.Role,
	}, nil
}

// RequireRole gates a route group to an allow-list of roles. No identity
// is a 401, a role outside the list is a 403.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := Identity(c)
		if !ok {
			err := apperr.Unauthorized("authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(err))
			return
		}
		if !identity.HasAnyRole(roles...) {
			err := apperr.Forbidden("insufficient role")
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse(err))
			return
		}
		c.Next()
	}
}

// Identity fetches the resolved identity from the request context.
func Identity(c *gin.Context) (*helpers.AuthIdentity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*helpers.AuthIdentity)
	return identity, ok
}
