package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sekolah-dev/school-site-api/internal/models"
)

const programColumns = "id, name, description, duration_years, requirements, created_at, updated_at"

// ProgramRepository handles persistence for study programs.
type ProgramRepository struct {
	db *sqlx.DB
}

// NewProgramRepository creates a new repository instance.
func NewProgramRepository(db *sqlx.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// List returns every program in insertion order.
func (r *ProgramRepository) List(ctx context.Context) ([]models.Program, error) {
	query := fmt.Sprintf("SELECT %s FROM programs ORDER BY id", programColumns)
	var programs []models.Program
	if err := r.db.SelectContext(ctx, &programs, query); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

// Create persists a new program and assigns its identifier.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now
	const query = `INSERT INTO programs (name, description, duration_years, requirements, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.GetContext(ctx, &program.ID, query,
		program.Name, program.Description, program.DurationYears, program.Requirements,
		program.CreatedAt, program.UpdatedAt); err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	return nil
}

// Update applies the provided fields as a single statement and returns
// the updated row. sql.ErrNoRows is returned when the id does not exist.
func (r *ProgramRepository) Update(ctx context.Context, id int64, p models.ProgramPatch) (*models.Program, error) {
	var sets []string
	var args []interface{}
	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if v, ok := p.Name.Value(); ok {
		set("name", v)
	}
	if v, ok := p.Description.Value(); ok {
		set("description", v)
	}
	if v, ok := p.DurationYears.Value(); ok {
		set("duration_years", v)
	}
	if p.Requirements.Present() {
		set("requirements", p.Requirements.Ptr())
	}
	set("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE programs SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), programColumns)

	var program models.Program
	if err := r.db.GetContext(ctx, &program, query, args...); err != nil {
		return nil, err
	}
	return &program, nil
}

// Delete removes a program, reporting whether a row was actually deleted.
func (r *ProgramRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM programs WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete program: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete program result: %w", err)
	}
	return affected > 0, nil
}
