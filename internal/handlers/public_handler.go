package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sewinggem/template-service/internal/models"
	"go.uber.org/zap"
)

// PublicTemplateService is the interface that wraps the public rendering operation
type PublicTemplateService interface {
	Render(ctx context.Context, slug string, values map[string]string) (*models.RenderedTemplate, error)
}

// PublicHandler handles the anonymous template rendering endpoint
type PublicHandler struct {
	BaseHandler
	templateService PublicTemplateService
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(templateService PublicTemplateService, logger *zap.Logger) *PublicHandler {
	return &PublicHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		templateService: templateService,
	}
}

// RegisterRoutes registers the public handler routes
func (h *PublicHandler) RegisterRoutes(r chi.Router) {
	r.Get("/templates/{slug}", h.RenderTemplate)
}

// RenderTemplate handles GET /templates/{slug}
// @Summary Render template by slug
// @Description Public endpoint: substitutes query parameter values into the template's placeholders, renders the markdown and returns both the substituted text and sanitized HTML. Placeholders with no matching query parameter stay literal.
// @Tags public
// @Produce json
// @Param slug path string true "Template slug"
// @Success 200 {object} map[string]any "Rendered template"
// @Failure 404 {object} map[string]any "Template not found"
// @Router /templates/{slug} [get]
func (h *PublicHandler) RenderTemplate(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	// Query parameters arrive URL-decoded; first value wins for repeats
	values := make(map[string]string)
	for key, list := range r.URL.Query() {
		if len(list) > 0 {
			values[key] = list[0]
		}
	}

	rendered, err := h.templateService.Render(r.Context(), slug, values)
	if err != nil {
		h.Logger.Warn("failed to render template", zap.String("slug", slug), zap.Error(err))
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"template": rendered,
	})
}
