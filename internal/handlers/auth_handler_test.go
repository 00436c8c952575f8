package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/motomeet/mm/internal/models"
	"github.com/motomeet/mm/internal/services"
	"github.com/supabase-community/gotrue-go/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthRepo struct {
	sentPhone  string
	sentCreate bool
}

func (s *stubAuthRepo) SendPhoneOTP(ctx context.Context, phone string, createUser bool, data map[string]interface{}) error {
	s.sentPhone = phone
	s.sentCreate = createUser
	return nil
}

func (s *stubAuthRepo) VerifyPhoneOTP(ctx context.Context, phone, code string) (*models.Session, types.User, error) {
	return nil, types.User{}, apperr.BadRequest("invalid or expired code")
}

func (s *stubAuthRepo) RefreshSession(ctx context.Context, refreshToken string) (*models.Session, types.User, error) {
	return &models.Session{AccessToken: "at", RefreshToken: "rt", TokenType: "bearer", ExpiresIn: 3600}, types.User{}, nil
}

func (s *stubAuthRepo) Logout(ctx context.Context, accessToken string) error { return nil }

type emptyProfileRepo struct{}

func (emptyProfileRepo) CreateProfile(ctx context.Context, row map[string]interface{}) (*models.Profile, error) {
	return nil, apperr.Internal(nil)
}
func (emptyProfileRepo) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return nil, apperr.NotFound("profile not found")
}
func (emptyProfileRepo) GetProfileByPhone(ctx context.Context, phone string) (*models.Profile, error) {
	return nil, apperr.NotFound("profile not found")
}
func (emptyProfileRepo) GetProfileByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return nil, apperr.NotFound("profile not found")
}
func (emptyProfileRepo) UpdateProfile(ctx context.Context, id uuid.UUID, row map[string]interface{}) (*models.Profile, error) {
	return nil, apperr.NotFound("profile not found")
}

func authRouter(repo *stubAuthRepo) *gin.Engine {
	svc := services.NewAuthService(repo, emptyProfileRepo{})
	r := gin.New()
	r.POST("/api/auth/phone", StartPhoneAuth(svc))
	r.POST("/api/auth/verify", VerifyPhoneAuth(svc))
	r.POST("/api/auth/logout", Logout(svc))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) models.ApiResponse {
	t.Helper()
	var res models.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return res
}

func TestStartPhoneAuthEndpoint(t *testing.T) {
	repo := &stubAuthRepo{}
	r := authRouter(repo)

	w := postJSON(r, "/api/auth/phone", `{"phone":"+14155551234"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	res := envelope(t, w)
	if !res.Success {
		t.Error("response should be successful")
	}
	data, ok := res.Data.(map[string]interface{})
	if !ok || data["isNewUser"] != true {
		t.Errorf("data = %v, want isNewUser true", res.Data)
	}
	if repo.sentPhone != "+14155551234" || !repo.sentCreate {
		t.Errorf("provider call = (%q, %v)", repo.sentPhone, repo.sentCreate)
	}
}

func TestStartPhoneAuthRejectsBadPhone(t *testing.T) {
	r := authRouter(&stubAuthRepo{})

	for _, body := range []string{`{"phone":"not-a-number"}`, `{}`, `{"phone":"4155551234"}`} {
		w := postJSON(r, "/api/auth/phone", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
			continue
		}
		res := envelope(t, w)
		if res.Error == nil || res.Error.Code != "VALIDATION_ERROR" {
			t.Errorf("body %s: error = %+v, want VALIDATION_ERROR", body, res.Error)
		}
	}
}

func TestVerifyEndpointRejectsBadCodeShape(t *testing.T) {
	r := authRouter(&stubAuthRepo{})

	w := postJSON(r, "/api/auth/verify", `{"phone":"+14155551234","code":"12ab56"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	res := envelope(t, w)
	if res.Error == nil || res.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v, want VALIDATION_ERROR", res.Error)
	}
}

func TestVerifyEndpointWrongCode(t *testing.T) {
	r := authRouter(&stubAuthRepo{})

	w := postJSON(r, "/api/auth/verify", `{"phone":"+14155551234","code":"123456"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	res := envelope(t, w)
	if res.Error == nil || res.Error.Code != "BAD_REQUEST" {
		t.Errorf("error = %+v, want BAD_REQUEST", res.Error)
	}
}

func TestLogoutEndpointRequiresBearer(t *testing.T) {
	r := authRouter(&stubAuthRepo{})

	w := postJSON(r, "/api/auth/logout", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
}
