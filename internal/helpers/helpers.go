package helpers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/golang-jwt/jwt/v5"
)

const AvatarFolder = "avatars"

type CustomClaims struct {
	Role        string `json:"role"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	AppMetadata struct {
		Provider  string   `json:"provider"`
		Providers []string `json:"providers"`
	} `json:"app_metadata"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// TokenVerifier validates provider-issued access tokens. It prefers the
// provider's JWKS; when the key set is unreachable it falls back to the
// shared HS256 project secret.
type TokenVerifier struct {
	SupabaseURL string
	JWTSecret   string
}

func NewTokenVerifier(supabaseURL, jwtSecret string) *TokenVerifier {
	return &TokenVerifier{SupabaseURL: supabaseURL, JWTSecret: jwtSecret}
}

func (tv *TokenVerifier) Validate(tokenStr string) (*CustomClaims, error) {
	if tokenStr == "" {
		return nil, errors.New("empty token")
	}

	jwksURL := fmt.Sprintf("%s/auth/v1/.well-known/jwks.json", strings.TrimRight(tv.SupabaseURL, "/"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{Ctx: ctx})
	if err != nil {
		return tv.validateWithSecret(tokenStr)
	}
	defer jwks.EndBackground()

	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

func (tv *TokenVerifier) validateWithSecret(tokenStr string) (*CustomClaims, error) {
	if tv.JWTSecret == "" {
		return nil, errors.New("no JWKS available and no JWT secret configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(tv.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("authorization header missing")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("malformed authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

// PlaceholderDisplayName builds the default name assigned on first OTP
// verification, e.g. "User 4567".
func PlaceholderDisplayName(phone string) string {
	digits := phone
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return "User " + digits
}

// UploadAvatar pushes one image to Cloudinary and returns its secure URL.
func UploadAvatar(ctx context.Context, cld *cloudinary.Cloudinary, imageData string) (string, error) {
	if strings.TrimSpace(imageData) == "" {
		return "", errors.New("empty image data")
	}

	result, err := cld.Upload.Upload(ctx, imageData, uploader.UploadParams{
		Folder: AvatarFolder,
		Tags:   []string{"motomeet"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %v", err)
	}
	return result.SecureURL, nil
}
