package services

import (
	"context"

	"github.com/sewinggem/template-service/internal/markdown"
	"github.com/sewinggem/template-service/internal/models"
	"github.com/sewinggem/template-service/internal/placeholder"
	"go.uber.org/zap"
)

// TemplateRepository is the interface that wraps methods for template data access
type TemplateRepository interface {
	Create(ctx context.Context, template *models.Template) error
	GetByID(ctx context.Context, id int) (*models.Template, error)
	GetBySlug(ctx context.Context, slug string) (*models.Template, error)
	GetAll(ctx context.Context, page, count int, search string) ([]models.Template, error)
	Update(ctx context.Context, id int, template *models.Template) error
	Delete(ctx context.Context, id int) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	ExistsBySlugExcluding(ctx context.Context, slug string, excludeID int) (bool, error)
}

// AuditLogRepository is the interface that wraps methods for appending audit entries
type AuditLogRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
}

// TxManager runs a function inside a single database transaction
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type templateService struct {
	repo      TemplateRepository
	auditRepo AuditLogRepository
	tx        TxManager
	logger    *zap.Logger
}

// NewTemplateService creates a new template service
func NewTemplateService(repo TemplateRepository, auditRepo AuditLogRepository, tx TxManager, logger *zap.Logger) *templateService {
	return &templateService{
		repo:      repo,
		auditRepo: auditRepo,
		tx:        tx,
		logger:    logger,
	}
}

// GetAll retrieves a paginated list of templates, most recently updated first
func (s *templateService) GetAll(ctx context.Context, page, count int, search string) ([]models.Template, error) {
	if page < 1 {
		page = 1
	}
	if count < 1 {
		count = 20
	}

	return s.repo.GetAll(ctx, page, count, search)
}

// GetByID retrieves a template by ID
func (s *templateService) GetByID(ctx context.Context, id int) (*models.Template, error) {
	return s.repo.GetByID(ctx, id)
}

// Create creates a new template. The slug is derived from the name and the
// placeholder set from the content; a name whose slug collides with an
// existing template is rejected. The template write and the audit entry are
// committed in one transaction.
func (s *templateService) Create(ctx context.Context, req *models.CreateTemplateRequest, actor string) (*models.Template, error) {
	slug := placeholder.Slugify(req.Name)

	exists, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateSlug
	}

	template := &models.Template{
		Slug:         slug,
		Name:         req.Name,
		Content:      req.Content,
		Placeholders: placeholder.Extract(req.Content),
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, template); err != nil {
			return err
		}
		return s.auditRepo.Create(ctx, &models.AuditLogEntry{
			Action:       models.AuditActionCreate,
			TemplateID:   template.ID,
			TemplateName: template.Name,
			Details:      actor,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, template.ID)
}

// Update applies a partial update to a template. A changed name regenerates
// the slug, a changed content regenerates the placeholder set. Last write
// wins on concurrent updates.
func (s *templateService) Update(ctx context.Context, id int, req *models.UpdateTemplateRequest, actor string) (*models.Template, error) {
	template, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		slug := placeholder.Slugify(req.Name)
		if slug != template.Slug {
			exists, err := s.repo.ExistsBySlugExcluding(ctx, slug, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, models.ErrDuplicateSlug
			}
		}
		template.Name = req.Name
		template.Slug = slug
	}

	if req.Content != "" {
		template.Content = req.Content
		template.Placeholders = placeholder.Extract(req.Content)
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, id, template); err != nil {
			return err
		}
		return s.auditRepo.Create(ctx, &models.AuditLogEntry{
			Action:       models.AuditActionUpdate,
			TemplateID:   id,
			TemplateName: template.Name,
			Details:      actor,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes a template. Removal is immediate and unrecoverable; the
// audit entry snapshots the name before the row disappears.
func (s *templateService) Delete(ctx context.Context, id int, actor string) error {
	template, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, id); err != nil {
			return err
		}
		return s.auditRepo.Create(ctx, &models.AuditLogEntry{
			Action:       models.AuditActionDelete,
			TemplateID:   template.ID,
			TemplateName: template.Name,
			Details:      actor,
		})
	})
}

// Render resolves a template by slug, substitutes the supplied values into
// its content and renders the result as sanitized HTML. Unmatched
// placeholders stay literal so the caller can detect which are unfilled.
func (s *templateService) Render(ctx context.Context, slug string, values map[string]string) (*models.RenderedTemplate, error) {
	template, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	content := placeholder.Substitute(template.Content, values)

	return &models.RenderedTemplate{
		Name:         template.Name,
		Content:      content,
		HTML:         markdown.Render(content),
		Placeholders: template.Placeholders,
	}, nil
}
