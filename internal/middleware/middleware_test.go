package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/helpers"
	"github.com/motomeet/mm/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func withIdentity(identity *helpers.AuthIdentity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(IdentityKey, identity)
		c.Next()
	}
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"ok": true}))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) models.ApiResponse {
	t.Helper()
	var res models.ApiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return res
}

func TestRequireRoleNoIdentity(t *testing.T) {
	r := gin.New()
	r.GET("/admin", RequireRole(models.RoleAdmin), okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	res := decodeEnvelope(t, w)
	if res.Error == nil || res.Error.Code != "UNAUTHORIZED" {
		t.Errorf("error = %+v, want UNAUTHORIZED", res.Error)
	}
}

func TestRequireRoleWrongRole(t *testing.T) {
	r := gin.New()
	identity := &helpers.AuthIdentity{ID: uuid.New(), Role: models.RoleRider}
	r.GET("/admin", withIdentity(identity), RequireRole(models.RoleAdmin, models.RoleModerator), okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
	res := decodeEnvelope(t, w)
	if res.Error == nil || res.Error.Code != "FORBIDDEN" {
		t.Errorf("error = %+v, want FORBIDDEN", res.Error)
	}
}

func TestRequireRoleAllowed(t *testing.T) {
	r := gin.New()
	identity := &helpers.AuthIdentity{ID: uuid.New(), Role: models.RoleModerator}
	r.GET("/admin", withIdentity(identity), RequireRole(models.RoleAdmin, models.RoleModerator), okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRequireAuthMissingHeader(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	verifier := &helpers.TokenVerifier{SupabaseURL: "http://localhost", JWTSecret: "secret"}

	r := gin.New()
	r.GET("/private", RequireAuth(verifier, nil, logger), okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	res := decodeEnvelope(t, w)
	if res.Success {
		t.Error("rejected request must not be successful")
	}
	if res.Error == nil || res.Error.Code != "UNAUTHORIZED" {
		t.Errorf("error = %+v, want UNAUTHORIZED", res.Error)
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	verifier := &helpers.TokenVerifier{SupabaseURL: "http://localhost", JWTSecret: "secret"}

	r := gin.New()
	r.GET("/private", RequireAuth(verifier, nil, logger), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

// A missing or malformed credential on an optional-auth route falls
// through to an anonymous request instead of a rejection.
func TestOptionalAuthProceedsAnonymously(t *testing.T) {
	verifier := &helpers.TokenVerifier{SupabaseURL: "http://localhost", JWTSecret: "secret"}

	r := gin.New()
	r.GET("/public", OptionalAuth(verifier, nil), func(c *gin.Context) {
		if _, ok := Identity(c); ok {
			t.Error("no identity expected for anonymous request")
		}
		okHandler(c)
	})

	for _, header := range []string{"", "Bearer", "NotBearer abc"} {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("header %q: status = %d, want 200", header, w.Code)
		}
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("a request id should be generated when none is supplied")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "client-supplied" {
		t.Errorf("request id = %q, want the client-supplied value", got)
	}
}

func TestIdentityAccessor(t *testing.T) {
	r := gin.New()
	want := &helpers.AuthIdentity{ID: uuid.New(), Role: models.RoleAdmin}
	r.GET("/", withIdentity(want), func(c *gin.Context) {
		got, ok := Identity(c)
		if !ok || got.ID != want.ID || got.Role != want.Role {
			t.Errorf("Identity = %+v, %v", got, ok)
		}
		okHandler(c)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
}
