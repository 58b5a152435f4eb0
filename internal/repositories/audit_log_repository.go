package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sewinggem/template-service/internal/models"
)

type auditLogRepository struct {
	db *sql.DB
}

// NewAuditLogRepository creates a new audit log repository. The log is
// append-only: entries are created and listed, never updated or deleted.
func NewAuditLogRepository(db *sql.DB) *auditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) conn(ctx context.Context) DBTX {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.db
}

// Create appends an audit log entry
func (r *auditLogRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (action, template_id, template_name, details)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.conn(ctx).ExecContext(ctx, query, entry.Action, entry.TemplateID, entry.TemplateName, entry.Details)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	entry.ID = int(id)
	return nil
}

// GetAll retrieves a paginated list of audit log entries, newest first
func (r *auditLogRepository) GetAll(ctx context.Context, page, count int) ([]models.AuditLogEntry, error) {
	offset := (page - 1) * count

	query := `
		SELECT id, action, template_id, template_name, details, created_at
		FROM audit_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.conn(ctx).QueryContext(ctx, query, count, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditLogEntry
	for rows.Next() {
		var entry models.AuditLogEntry
		var details sql.NullString

		err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.TemplateID,
			&entry.TemplateName,
			&details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}

		entry.Details = details.String
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}
