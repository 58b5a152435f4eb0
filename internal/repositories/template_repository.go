package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sewinggem/template-service/internal/models"
)

type templateRepository struct {
	db *sql.DB
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *sql.DB) *templateRepository {
	return &templateRepository{db: db}
}

// conn returns the transactional handle from ctx when present, otherwise the
// plain database handle
func (r *templateRepository) conn(ctx context.Context) DBTX {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.db
}

// marshalPlaceholders encodes the placeholder set as a JSON column value.
// An empty set is stored as NULL.
func marshalPlaceholders(placeholders []string) (any, error) {
	if len(placeholders) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(placeholders)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal placeholders: %w", err)
	}
	return string(data), nil
}

// scanPlaceholders decodes the nullable JSON placeholders column
func scanPlaceholders(raw sql.NullString) ([]string, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var placeholders []string
	if err := json.Unmarshal([]byte(raw.String), &placeholders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal placeholders: %w", err)
	}
	return placeholders, nil
}

// Create inserts a new template
func (r *templateRepository) Create(ctx context.Context, template *models.Template) error {
	placeholders, err := marshalPlaceholders(template.Placeholders)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO templates (slug, name, content, placeholders)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.conn(ctx).ExecContext(ctx, query, template.Slug, template.Name, template.Content, placeholders)
	if err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	template.ID = int(id)
	return nil
}

func (r *templateRepository) scanTemplate(row *sql.Row) (*models.Template, error) {
	template := &models.Template{}
	var placeholders sql.NullString

	err := row.Scan(
		&template.ID,
		&template.Slug,
		&template.Name,
		&template.Content,
		&placeholders,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan template: %w", err)
	}

	template.Placeholders, err = scanPlaceholders(placeholders)
	if err != nil {
		return nil, err
	}

	return template, nil
}

// GetByID retrieves a template by ID
func (r *templateRepository) GetByID(ctx context.Context, id int) (*models.Template, error) {
	query := `
		SELECT id, slug, name, content, placeholders, created_at, updated_at
		FROM templates
		WHERE id = ?
		LIMIT 1
	`

	return r.scanTemplate(r.conn(ctx).QueryRowContext(ctx, query, id))
}

// GetBySlug retrieves a template by slug
func (r *templateRepository) GetBySlug(ctx context.Context, slug string) (*models.Template, error) {
	query := `
		SELECT id, slug, name, content, placeholders, created_at, updated_at
		FROM templates
		WHERE slug = ?
		LIMIT 1
	`

	return r.scanTemplate(r.conn(ctx).QueryRowContext(ctx, query, slug))
}

// GetAll retrieves a paginated list of templates with optional search,
// most recently updated first
func (r *templateRepository) GetAll(ctx context.Context, page, count int, search string) ([]models.Template, error) {
	var args []any
	whereClause := ""

	if search != "" {
		whereClause = "WHERE name LIKE ? OR slug LIKE ?"
		args = append(args, "%"+search+"%", "%"+search+"%")
	}

	offset := (page - 1) * count

	query := fmt.Sprintf(`
		SELECT id, slug, name, content, placeholders, created_at, updated_at
		FROM templates
		%s
		ORDER BY updated_at DESC
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, count, offset)

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		var template models.Template
		var placeholders sql.NullString

		err := rows.Scan(
			&template.ID,
			&template.Slug,
			&template.Name,
			&template.Content,
			&placeholders,
			&template.CreatedAt,
			&template.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}

		template.Placeholders, err = scanPlaceholders(placeholders)
		if err != nil {
			return nil, err
		}

		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return templates, nil
}

// Update overwrites a template's slug, name, content and placeholder set.
// Callers resolve partial updates against the stored row first, so the
// write is a full-row update. Existence is the caller's concern: MySQL
// reports zero affected rows for a no-op update, so that signal is not a
// reliable not-found check here.
func (r *templateRepository) Update(ctx context.Context, id int, template *models.Template) error {
	placeholders, err := marshalPlaceholders(template.Placeholders)
	if err != nil {
		return err
	}

	query := `
		UPDATE templates
		SET slug = ?, name = ?, content = ?, placeholders = ?
		WHERE id = ?
	`

	if _, err := r.conn(ctx).ExecContext(ctx, query, template.Slug, template.Name, template.Content, placeholders, id); err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}

	return nil
}

// Delete deletes a template by ID
func (r *templateRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM templates WHERE id = ?`

	result, err := r.conn(ctx).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrTemplateNotFound
	}

	return nil
}

// ExistsBySlug checks if a template exists with the given slug
func (r *templateRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM templates WHERE slug = ?)`

	var exists bool
	err := r.conn(ctx).QueryRowContext(ctx, query, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}

// ExistsBySlugExcluding checks if a template other than the given ID uses the
// slug. Used on rename so a template keeps its own slug without conflict.
func (r *templateRepository) ExistsBySlugExcluding(ctx context.Context, slug string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM templates WHERE slug = ? AND id != ?)`

	var exists bool
	err := r.conn(ctx).QueryRowContext(ctx, query, slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return exists, nil
}
