package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sekolah-dev/school-site-api/internal/models"
)

const alumniColumns = "id, name, graduation_year, major, current_position, company, contact_email, bio, created_at, updated_at"

// AlumniRepository handles persistence for alumni profiles.
type AlumniRepository struct {
	db *sqlx.DB
}

// NewAlumniRepository creates a new repository instance.
func NewAlumniRepository(db *sqlx.DB) *AlumniRepository {
	return &AlumniRepository{db: db}
}

// List returns every alumni profile, most recent graduation year first.
func (r *AlumniRepository) List(ctx context.Context) ([]models.Alumni, error) {
	query := fmt.Sprintf("SELECT %s FROM alumni ORDER BY graduation_year DESC", alumniColumns)
	var alumni []models.Alumni
	if err := r.db.SelectContext(ctx, &alumni, query); err != nil {
		return nil, fmt.Errorf("list alumni: %w", err)
	}
	return alumni, nil
}

// Create persists a new alumni profile and assigns its identifier.
func (r *AlumniRepository) Create(ctx context.Context, alumni *models.Alumni) error {
	now := time.Now().UTC()
	alumni.CreatedAt = now
	alumni.UpdatedAt = now
	const query = `INSERT INTO alumni (name, graduation_year, major, current_position, company, contact_email, bio, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := r.db.GetContext(ctx, &alumni.ID, query,
		alumni.Name, alumni.GraduationYear, alumni.Major,
		alumni.CurrentPosition, alumni.Company, alumni.ContactEmail, alumni.Bio,
		alumni.CreatedAt, alumni.UpdatedAt); err != nil {
		return fmt.Errorf("create alumni: %w", err)
	}
	return nil
}

// Update applies the provided fields and returns the updated row.
func (r *AlumniRepository) Update(ctx context.Context, id int64, p models.AlumniPatch) (*models.Alumni, error) {
	var sets []string
	var args []interface{}
	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if v, ok := p.Name.Value(); ok {
		set("name", v)
	}
	if v, ok := p.GraduationYear.Value(); ok {
		set("graduation_year", v)
	}
	if v, ok := p.Major.Value(); ok {
		set("major", v)
	}
	if p.CurrentPosition.Present() {
		set("current_position", p.CurrentPosition.Ptr())
	}
	if p.Company.Present() {
		set("company", p.Company.Ptr())
	}
	if p.ContactEmail.Present() {
		set("contact_email", p.ContactEmail.Ptr())
	}
	if p.Bio.Present() {
		set("bio", p.Bio.Ptr())
	}
	set("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE alumni SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), alumniColumns)

	var alumni models.Alumni
	if err := r.db.GetContext(ctx, &alumni, query, args...); err != nil {
		return nil, err
	}
	return &alumni, nil
}

// Delete removes an alumni profile, reporting whether a row was actually deleted.
func (r *AlumniRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM alumni WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete alumni: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete alumni result: %w", err)
	}
	return affected > 0, nil
}
