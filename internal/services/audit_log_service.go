package services

import (
	"context"

	"github.com/sewinggem/template-service/internal/models"
)

// AuditLogReadRepository is the interface that wraps methods for reading the audit log
type AuditLogReadRepository interface {
	GetAll(ctx context.Context, page, count int) ([]models.AuditLogEntry, error)
}

type auditLogService struct {
	repo AuditLogReadRepository
}

// NewAuditLogService creates a new audit log service
func NewAuditLogService(repo AuditLogReadRepository) *auditLogService {
	return &auditLogService{repo: repo}
}

// GetAll retrieves a paginated list of audit log entries, newest first
func (s *auditLogService) GetAll(ctx context.Context, page, count int) ([]models.AuditLogEntry, error) {
	if page < 1 {
		page = 1
	}
	if count < 1 {
		count = 20
	}

	return s.repo.GetAll(ctx, page, count)
}
