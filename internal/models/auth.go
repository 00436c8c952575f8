package models

import (
	"github.com/supabase-community/gotrue-go/types"
)

type PhoneAuthInput struct {
	Phone string `json:"phone" binding:"required,e164"`
}

type VerifyPhoneInput struct {
	Phone string `json:"phone" binding:"required,e164"`
	Code  string `json:"code" binding:"required,len=6,number"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type PhoneAuthResult struct {
	IsNewUser bool `json:"isNewUser"`
}

// Session is the token bundle returned after OTP verification.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// VerifyResult is the full payload of a successful verification:
// provider identity, application profile, session tokens, and whether
// this was a first-time signup.
type VerifyResult struct {
	User      types.User `json:"user"`
	Profile   *Profile   `json:"profile"`
	Session   Session    `json:"session"`
	IsNewUser bool       `json:"isNewUser"`
}
