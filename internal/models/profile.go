package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleRider     Role = "rider"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Profile is the identity record for an authenticated user. Its id
// always equals the auth provider's user id; one row per identity,
// created lazily on first OTP verification.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Handle        *string   `json:"handle,omitempty"`
	DisplayName   string    `json:"displayName"`
	Bio           string    `json:"bio,omitempty"`
	AvatarURL     string    `json:"avatarUrl,omitempty"`
	CountryCode   string    `json:"countryCode,omitempty"`
	PhoneNumber   string    `json:"phoneNumber,omitempty"`
	Role          Role      `json:"role"`
	IsAvailable   bool      `json:"isAvailable"`
	LastLatitude  *float64  `json:"lastLatitude,omitempty"`
	LastLongitude *float64  `json:"lastLongitude,omitempty"`
	PushToken     string    `json:"pushToken,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProfileFields is the declared API-to-column translation for profiles.
var ProfileFields = FieldMap{
	"id":            "id",
	"handle":        "handle",
	"displayName":   "display_name",
	"bio":           "bio",
	"avatarUrl":     "avatar_url",
	"countryCode":   "country_code",
	"phoneNumber":   "phone_number",
	"role":          "role",
	"isAvailable":   "is_available",
	"lastLatitude":  "last_latitude",
	"lastLongitude": "last_longitude",
	"pushToken":     "push_token",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

type CreateProfileInput struct {
	Handle        *string  `json:"handle,omitempty" binding:"omitempty,handle"`
	DisplayName   string   `json:"displayName" binding:"required,min=1,max=80"`
	Bio           *string  `json:"bio,omitempty" binding:"omitempty,max=500"`
	AvatarURL     *string  `json:"avatarUrl,omitempty" binding:"omitempty,url"`
	CountryCode   *string  `json:"countryCode,omitempty" binding:"omitempty,iso3166_1_alpha2"`
	IsAvailable   *bool    `json:"isAvailable,omitempty"`
	LastLatitude  *float64 `json:"lastLatitude,omitempty" binding:"omitempty,latitude"`
	LastLongitude *float64 `json:"lastLongitude,omitempty" binding:"omitempty,longitude"`
	PushToken     *string  `json:"pushToken,omitempty" binding:"omitempty,max=255"`
}

type UpdateProfileInput struct {
	Handle        *string  `json:"handle,omitempty" binding:"omitempty,handle"`
	DisplayName   *string  `json:"displayName,omitempty" binding:"omitempty,min=1,max=80"`
	Bio           *string  `json:"bio,omitempty" binding:"omitempty,max=500"`
	AvatarURL     *string  `json:"avatarUrl,omitempty" binding:"omitempty,url"`
	CountryCode   *string  `json:"countryCode,omitempty" binding:"omitempty,iso3166_1_alpha2"`
	IsAvailable   *bool    `json:"isAvailable,omitempty"`
	LastLatitude  *float64 `json:"lastLatitude,omitempty" binding:"omitempty,latitude"`
	LastLongitude *float64 `json:"lastLongitude,omitempty" binding:"omitempty,longitude"`
	PushToken     *string  `json:"pushToken,omitempty" binding:"omitempty,max=255"`
}
