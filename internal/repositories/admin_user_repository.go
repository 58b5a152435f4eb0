package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sewinggem/template-service/internal/models"
)

type adminUserRepository struct {
	db *sql.DB
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *sql.DB) *adminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) conn(ctx context.Context) DBTX {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return r.db
}

// Create inserts a new admin user
func (r *adminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (username, password_hash)
		VALUES (?, ?)
	`

	result, err := r.conn(ctx).ExecContext(ctx, query, user.Username, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	return nil
}

// GetByUsername retrieves an admin user by username
func (r *adminUserRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM admin_users
		WHERE username = ?
		LIMIT 1
	`

	user := &models.AdminUser{}
	err := r.conn(ctx).QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin user by username: %w", err)
	}

	return user, nil
}

// ExistsByUsername checks if an admin user exists with the given username
func (r *adminUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admin_users WHERE username = ?)`

	var exists bool
	err := r.conn(ctx).QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}

	return exists, nil
}
