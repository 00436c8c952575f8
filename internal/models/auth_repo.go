package models

import (
	"context"

	"github.com/motomeet/mm/internal/apperr"
	"github.com/supabase-community/gotrue-go/types"
)

// AuthRepo delegates every credential operation to the managed auth
// provider. OTP delivery, code checking and session issuance all happen
// on the provider side.
type AuthRepo interface {
	SendPhoneOTP(ctx context.Context, phone string, createUser bool, data map[string]interface{}) error
	VerifyPhoneOTP(ctx context.Context, phone, code string) (*Session, types.User, error)
	RefreshSession(ctx context.Context, refreshToken string) (*Session, types.User, error)
	Logout(ctx context.Context, accessToken string) error
}

func (su *SupabaseRepo) SendPhoneOTP(ctx context.Context, phone string, createUser bool, data map[string]interface{}) error {
	err := su.client.Auth.OTP(types.OTPRequest{
		Phone:      phone,
		CreateUser: createUser,
		Data:       data,
	})
	if err != nil {
		return apperr.Wrap(err, apperr.KindBadRequest, "failed to send verification code")
	}
	return nil
}

func (su *SupabaseRepo) VerifyPhoneOTP(ctx context.Context, phone, code string) (*Session, types.User, error) {
	resp, err := su.client.Auth.VerifyForUser(types.VerifyForUserRequest{
		Type:  types.VerificationTypeSMS,
		Phone: phone,
		Token: code,
	})
	if err != nil {
		return nil, types.User{}, apperr.Wrap(err, apperr.KindBadRequest, "invalid or expired code")
	}

	session := &Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		ExpiresIn:    resp.ExpiresIn,
	}
	return session, resp.User, nil
}

func (su *SupabaseRepo) RefreshSession(ctx context.Context, refreshToken string) (*Session, types.User, error) {
	resp, err := su.client.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, types.User{}, apperr.Wrap(err, apperr.KindUnauthorized, "token refresh failed")
	}

	session := &Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		ExpiresIn:    resp.ExpiresIn,
	}
	return session, resp.User, nil
}

func (su *SupabaseRepo) Logout(ctx context.Context, accessToken string) error {
	if err := su.client.Auth.WithToken(accessToken).Logout(); err != nil {
		return apperr.Wrap(err, apperr.KindUnauthorized, "logout failed")
	}
	return nil
}
