package helpers

import (
	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/models"
)

// AuthIdentity is the resolved identity attached to the request context
// by the auth middleware: provider subject plus the profile's role.
type AuthIdentity struct {
	ID    uuid.UUID   `json:"id"`
	Email string      `json:"email,omitempty"`
	Role  models.Role `json:"role"`
}

func (ai *AuthIdentity) IsAdmin() bool {
	return ai.Role == models.RoleAdmin
}

func (ai *AuthIdentity) IsModerator() bool {
	return ai.Role == models.RoleModerator
}

// CanModerate reports whether the identity may act on resources it does
// not own.
func (ai *AuthIdentity) CanModerate() bool {
	return ai.Role == models.RoleAdmin || ai.Role == models.RoleModerator
}

func (ai *AuthIdentity) IsOwner(id uuid.UUID) bool {
	return ai.ID == id
}

func (ai *AuthIdentity) HasAnyRole(roles ...models.Role) bool {
	for _, role := range roles {
		if ai.Role == role {
			return true
		}
	}
	return false
}
