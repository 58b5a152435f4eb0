package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sewinggem/template-service/internal/auth"
	"github.com/sewinggem/template-service/internal/middleware"
	"github.com/sewinggem/template-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAuthService struct {
	loginFunc func(ctx context.Context, req *models.LoginRequest) (string, *models.AdminUser, error)
}

func (m *mockAuthService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.AdminUser, error) {
	return m.loginFunc(ctx, req)
}

// passthroughAuth is a stand-in for the session middleware in route tests
func passthroughAuth(next http.Handler) http.Handler {
	return next
}

func setupAuthHandler(t *testing.T, service AuthService) *chi.Mux {
	t.Helper()
	handler := NewAuthHandler(service, zap.NewNop(), 86400, false)
	r := chi.NewRouter()
	handler.RegisterRoutes(r, passthroughAuth)
	return r
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success sets session cookie", func(t *testing.T) {
		service := &mockAuthService{
			loginFunc: func(ctx context.Context, req *models.LoginRequest) (string, *models.AdminUser, error) {
				assert.Equal(t, "gemma", req.Username)
				return "signed-token", &models.AdminUser{ID: 1, Username: "gemma"}, nil
			},
		}
		router := setupAuthHandler(t, service)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"gemma","password":"changethispassword"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"data":{"username":"gemma"}}`, rec.Body.String())

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "signed-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, 86400, cookie.MaxAge)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		service := &mockAuthService{
			loginFunc: func(ctx context.Context, req *models.LoginRequest) (string, *models.AdminUser, error) {
				return "", nil, models.ErrInvalidCredentials
			},
		}
		router := setupAuthHandler(t, service)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"gemma","password":"wrong"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
		assert.Nil(t, sessionCookie(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		router := setupAuthHandler(t, &mockAuthService{})

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{not json`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		router := setupAuthHandler(t, &mockAuthService{})

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"gemma"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "username and password are required")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	router := setupAuthHandler(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestAuthHandler_Me(t *testing.T) {
	handler := NewAuthHandler(&mockAuthService{}, zap.NewNop(), 86400, false)

	t.Run("with identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		identity := &auth.Identity{UserID: 1, Username: "gemma"}
		req = req.WithContext(middleware.WithIdentity(req.Context(), identity))
		rec := httptest.NewRecorder()
		handler.Me(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "gemma")
	})

	t.Run("without identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		rec := httptest.NewRecorder()
		handler.Me(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
