package services

import (
	"context"

	"github.com/sewinggem/template-service/internal/auth"
	"github.com/sewinggem/template-service/internal/models"
	"github.com/sewinggem/template-service/internal/placeholder"
	"go.uber.org/zap"
)

// SeedUserRepository is the interface that wraps methods for provisioning admin users
type SeedUserRepository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *models.AdminUser) error
}

// SeedTemplateRepository is the interface that wraps methods for provisioning templates
type SeedTemplateRepository interface {
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, template *models.Template) error
}

const (
	welcomeTemplateSlug = "welcome"
	welcomeTemplateName = "Welcome Email"
)

const welcomeTemplateContent = `# Welcome to SewingGem!

Dear {{CUSTOMER_NAME}},

Thank you for joining our sewing community! We're thrilled to have you as part of the SewingGem family.

Your account has been successfully created with the email: {{EMAIL}}.

## What's Next?

- Browse our collection of patterns and tutorials
- Join our online workshops every {{WORKSHOP_DAY}}
- Connect with fellow sewing enthusiasts in our community forum

If you have any questions, please don't hesitate to reach out to our support team.

Happy sewing!

Best regards,
The SewingGem Team`

// Seeder provisions the admin account and the sample template at startup.
// Both are created only when missing, so re-running is safe.
type Seeder struct {
	userRepo     SeedUserRepository
	templateRepo SeedTemplateRepository
	logger       *zap.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(userRepo SeedUserRepository, templateRepo SeedTemplateRepository, logger *zap.Logger) *Seeder {
	return &Seeder{
		userRepo:     userRepo,
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// Run seeds the admin user with the given credentials and the sample
// "Welcome Email" template
func (s *Seeder) Run(ctx context.Context, adminUsername, adminPassword string) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, adminUsername)
	if err != nil {
		return err
	}
	if !exists {
		passwordHash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return err
		}

		user := &models.AdminUser{
			Username:     adminUsername,
			PasswordHash: passwordHash,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		s.logger.Info("seeded admin user", zap.String("username", adminUsername))
	}

	exists, err = s.templateRepo.ExistsBySlug(ctx, welcomeTemplateSlug)
	if err != nil {
		return err
	}
	if !exists {
		template := &models.Template{
			Slug:         welcomeTemplateSlug,
			Name:         welcomeTemplateName,
			Content:      welcomeTemplateContent,
			Placeholders: placeholder.Extract(welcomeTemplateContent),
		}
		if err := s.templateRepo.Create(ctx, template); err != nil {
			return err
		}
		s.logger.Info("seeded sample template", zap.String("slug", welcomeTemplateSlug))
	}

	return nil
}
