package services

import (
	"context"
	"time"

	"github.com/motomeet/mm/internal/apperr"
	"github.com/motomeet/mm/internal/helpers"
	"github.com/motomeet/mm/internal/models"
)

// AuthService drives the two-step phone OTP flow. All credential work is
// delegated to the managed auth provider; this service only decides
// whether an identity should be created and keeps the profile row in
// step with the provider identity.
type AuthService struct {
	authRepo    models.AuthRepo
	profileRepo models.ProfileRepo
}

func NewAuthService(authRepo models.AuthRepo, profileRepo models.ProfileRepo) *AuthService {
	return &AuthService{
		authRepo:    authRepo,
		profileRepo: profileRepo,
	}
}

// StartPhoneAuth requests an OTP for the phone number. Unregistered
// numbers get a new provider identity with a placeholder display name.
func (as *AuthService) StartPhoneAuth(ctx context.Context, phone string) (*models.PhoneAuthResult, error) {
	isNewUser := false
	_, err := as.profileRepo.GetProfileByPhone(ctx, phone)
	if err != nil {
		if !apperr.Is(err, apperr.KindNotFound) {
			return nil, err
		}
		isNewUser = true
	}

	var data map[string]interface{}
	if isNewUser {
		data = map[string]interface{}{
			"display_name": helpers.PlaceholderDisplayName(phone),
		}
	}

	if err := as.authRepo.SendPhoneOTP(ctx, phone, isNewUser, data); err != nil {
		return nil, err
	}

	return &models.PhoneAuthResult{IsNewUser: isNewUser}, nil
}

// VerifyPhoneAuth checks the submitted code with the provider and, on a
// first-time verification, lazily creates the profile with defaults.
func (as *AuthService) VerifyPhoneAuth(ctx context.Context, phone, code string) (*models.VerifyResult, error) {
	session, user, err := as.authRepo.VerifyPhoneOTP(ctx, phone, code)
	if err != nil {
		return nil, err
	}

	isNewUser := false
	profile, err := as.profileRepo.GetProfile(ctx, user.ID)
	if err != nil {
		if !apperr.Is(err, apperr.KindNotFound) {
			return nil, err
		}

		now := time.Now().UTC()
		row := models.ProfileFields.ToRow(map[string]interface{}{
			"id":          user.ID.String(),
			"displayName": helpers.PlaceholderDisplayName(phone),
			"phoneNumber": phone,
			"role":        models.RoleRider,
			"isAvailable": false,
			"createdAt":   now.Format(time.RFC3339),
			"updatedAt":   now.Format(time.RFC3339),
		})
		profile, err = as.profileRepo.CreateProfile(ctx, row)
		if err != nil {
			return nil, err
		}
		isNewUser = true
	}

	return &models.VerifyResult{
		User:      user,
		Profile:   profile,
		Session:   *session,
		IsNewUser: isNewUser,
	}, nil
}

func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.Session, error) {
	if refreshToken == "" {
		return nil, apperr.BadRequest("refresh token is required")
	}
	session, _, err := as.authRepo.RefreshSession(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (as *AuthService) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return apperr.Unauthorized("access token is required")
	}
	return as.authRepo.Logout(ctx, accessToken)
}
