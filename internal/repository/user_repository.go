package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sekolah-dev/school-site-api/internal/models"
)

const adminUserColumns = "id, email, password_hash, full_name, active, created_at, updated_at"

// UserRepository handles persistence for back-office admin accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new repository instance.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the admin account with the given email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := "SELECT " + adminUserColumns + " FROM admin_users WHERE LOWER(email) = LOWER($1)"
	var user models.AdminUser
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the admin account with the given identifier.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	query := "SELECT " + adminUserColumns + " FROM admin_users WHERE id = $1"
	var user models.AdminUser
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}
