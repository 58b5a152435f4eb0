package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sewinggem/template-service/internal/middleware"
	"github.com/sewinggem/template-service/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic
type AuthService interface {
	// Method Login performs a credentials check and returns a signed session
	// token together with the authenticated user.
	//
	// If credentials are invalid, models.ErrInvalidCredentials is returned.
	Login(ctx context.Context, req *models.LoginRequest) (string, *models.AdminUser, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService   AuthService
	validate      *validator.Validate
	cookieMaxAge  int
	secureCookies bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger, cookieMaxAge int, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		authService:   authService,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		cookieMaxAge:  cookieMaxAge,
		secureCookies: secureCookies,
	}
}

// RegisterRoutes registers all auth handler routes.
// Note: This assumes the router is already scoped to /api.
func (h *AuthHandler) RegisterRoutes(r chi.Router, requireAuth func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", h.Me)
		})
	})
}

// Login handles POST /auth/login
// @Summary Login admin user
// @Description Authenticate with username and password. Sets the session token as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} map[string]any "Login successful"
// @Failure 400 {object} map[string]any "Invalid request body"
// @Failure 401 {object} map[string]any "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, user, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.Logger.Warn("login failed", zap.String("username", req.Username), zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.setSessionCookie(w, token)

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]string{"username": user.Username},
	})
}

// Logout handles POST /auth/logout
// @Summary Logout admin user
// @Description Clears the session cookie. There is no server-side session state to revoke.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any "Logout successful"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	h.RespondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Me handles GET /auth/me
// @Summary Current session identity
// @Description Returns the username of the authenticated admin.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]any "Authenticated identity"
// @Failure 401 {object} map[string]any "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]string{"username": identity.Username},
	})
}

// setSessionCookie sets the session token as an HTTP-only cookie
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cookieMaxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie
func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
