package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sewinggem/template-service/internal/middleware"
	"github.com/sewinggem/template-service/internal/models"
	"go.uber.org/zap"
)

// AdminTemplateService is the interface that wraps methods for template business logic
type AdminTemplateService interface {
	GetAll(ctx context.Context, page, count int, search string) ([]models.Template, error)
	GetByID(ctx context.Context, id int) (*models.Template, error)
	Create(ctx context.Context, req *models.CreateTemplateRequest, actor string) (*models.Template, error)
	Update(ctx context.Context, id int, req *models.UpdateTemplateRequest, actor string) (*models.Template, error)
	Delete(ctx context.Context, id int, actor string) error
}

// AdminAuditLogService is the interface that wraps methods for reading the audit log
type AdminAuditLogService interface {
	GetAll(ctx context.Context, page, count int) ([]models.AuditLogEntry, error)
}

// AdminHandler handles admin-related HTTP requests. All routes require a
// valid session; the route gate lives in the router group, not here.
type AdminHandler struct {
	BaseHandler
	templateService AdminTemplateService
	auditLogService AdminAuditLogService
	validate        *validator.Validate
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(templateService AdminTemplateService, auditLogService AdminAuditLogService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		templateService: templateService,
		auditLogService: auditLogService,
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes registers all admin handler routes
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		// Templates
		r.Get("/templates", h.GetTemplatesList)
		r.Post("/templates", h.CreateTemplate)
		r.Get("/templates/{id}", h.GetTemplate)
		r.Put("/templates/{id}", h.UpdateTemplate)
		r.Delete("/templates/{id}", h.DeleteTemplate)

		// Audit Logs
		r.Get("/audit-logs", h.GetAuditLogsList)
	})
}

// actor returns the authenticated admin's username for audit tagging
func (h *AdminHandler) actor(r *http.Request) string {
	if identity, ok := middleware.GetIdentity(r.Context()); ok {
		return identity.Username
	}
	return ""
}

// parsePagination reads page/count query parameters with defaults
func parsePagination(r *http.Request) (int, int) {
	page := 1
	count := 20

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	if countStr := r.URL.Query().Get("count"); countStr != "" {
		if c, err := strconv.Atoi(countStr); err == nil && c > 0 {
			count = c
		}
	}

	return page, count
}

// GetTemplatesList handles GET /admin/templates
// @Summary Get list of templates
// @Description Get paginated list of templates with optional search filter, most recently updated first. Requires a valid session.
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param page query int false "Page number (default: 1)"
// @Param count query int false "Items per page (default: 20)"
// @Param search query string false "Search in template name or slug"
// @Success 200 {object} map[string]any "List of templates"
// @Failure 401 {object} map[string]any "Unauthorized"
// @Failure 500 {object} map[string]any "Internal server error"
// @Router /admin/templates [get]
func (h *AdminHandler) GetTemplatesList(w http.ResponseWriter, r *http.Request) {
	page, count := parsePagination(r)

	search := ""
	if searchStr := r.URL.Query().Get("search"); searchStr != "" {
		search = strings.TrimSpace(searchStr)
	}

	templates, err := h.templateService.GetAll(r.Context(), page, count, search)
	if err != nil {
		h.Logger.Error("failed to get templates list", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}
	if templates == nil {
		templates = []models.Template{}
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"templates": templates,
	})
}

// GetTemplate handles GET /admin/templates/{id}
// @Summary Get template by ID
// @Description Get full template information by numeric ID. Requires a valid session.
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param id path int true "Template ID"
// @Success 200 {object} map[string]any "Template details"
// @Failure 400 {object} map[string]any "Invalid template ID"
// @Failure 404 {object} map[string]any "Template not found"
// @Router /admin/templates/{id} [get]
func (h *AdminHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid template ID")
		return
	}

	template, err := h.templateService.GetByID(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"template": template,
	})
}

// CreateTemplate handles POST /admin/templates
// @Summary Create template
// @Description Create a new template. The slug is derived from the name; a duplicate slug is rejected. Requires a valid session.
// @Tags admin
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param template body models.CreateTemplateRequest true "Template creation request"
// @Success 201 {object} map[string]any "Template created"
// @Failure 400 {object} map[string]any "Invalid request body or duplicate name"
// @Failure 401 {object} map[string]any "Unauthorized"
// @Router /admin/templates [post]
func (h *AdminHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "name (1-255 chars) and content are required")
		return
	}

	template, err := h.templateService.Create(r.Context(), &req, h.actor(r))
	if err != nil {
		h.Logger.Error("failed to create template", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"template": template,
	})
}

// UpdateTemplate handles PUT /admin/templates/{id}
// @Summary Update template
// @Description Partially update a template. A changed name regenerates the slug, a changed content regenerates the placeholder set. Requires a valid session.
// @Tags admin
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Template ID"
// @Param template body models.UpdateTemplateRequest true "Template update request"
// @Success 200 {object} map[string]any "Template updated"
// @Failure 400 {object} map[string]any "Invalid request body or duplicate name"
// @Failure 404 {object} map[string]any "Template not found"
// @Router /admin/templates/{id} [put]
func (h *AdminHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid template ID")
		return
	}

	var req models.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "name must be at most 255 chars")
		return
	}

	template, err := h.templateService.Update(r.Context(), id, &req, h.actor(r))
	if err != nil {
		h.Logger.Error("failed to update template", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"template": template,
	})
}

// DeleteTemplate handles DELETE /admin/templates/{id}
// @Summary Delete template
// @Description Delete a template by ID. Removal is immediate and unrecoverable. Requires a valid session.
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param id path int true "Template ID"
// @Success 200 {object} map[string]any "Template deleted"
// @Failure 400 {object} map[string]any "Invalid template ID"
// @Failure 404 {object} map[string]any "Template not found"
// @Router /admin/templates/{id} [delete]
func (h *AdminHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid template ID")
		return
	}

	if err := h.templateService.Delete(r.Context(), id, h.actor(r)); err != nil {
		h.Logger.Error("failed to delete template", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// GetAuditLogsList handles GET /admin/audit-logs
// @Summary Get audit log
// @Description Get paginated audit log entries, newest first. Requires a valid session.
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param page query int false "Page number (default: 1)"
// @Param count query int false "Items per page (default: 20)"
// @Success 200 {object} map[string]any "Audit log entries"
// @Failure 401 {object} map[string]any "Unauthorized"
// @Failure 500 {object} map[string]any "Internal server error"
// @Router /admin/audit-logs [get]
func (h *AdminHandler) GetAuditLogsList(w http.ResponseWriter, r *http.Request) {
	page, count := parsePagination(r)

	logs, err := h.auditLogService.GetAll(r.Context(), page, count)
	if err != nil {
		h.Logger.Error("failed to get audit logs", zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLogEntry{}
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"logs":    logs,
	})
}
