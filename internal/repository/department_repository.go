package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sekolah-dev/school-site-api/internal/models"
)

const departmentColumns = "id, name, description, head_of_department, created_at, updated_at"

// DepartmentRepository handles persistence for departments.
type DepartmentRepository struct {
	db *sqlx.DB
}

// NewDepartmentRepository creates a new repository instance.
func NewDepartmentRepository(db *sqlx.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// List returns every department in insertion order.
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	query := fmt.Sprintf("SELECT %s FROM departments ORDER BY id", departmentColumns)
	var departments []models.Department
	if err := r.db.SelectContext(ctx, &departments, query); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

// Create persists a new department and assigns its identifier.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	now := time.Now().UTC()
	department.CreatedAt = now
	department.UpdatedAt = now
	const query = `INSERT INTO departments (name, description, head_of_department, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.GetContext(ctx, &department.ID, query,
		department.Name, department.Description, department.HeadOfDepartment,
		department.CreatedAt, department.UpdatedAt); err != nil {
		return fmt.Errorf("create department: %w", err)
	}
	return nil
}

// Update applies the provided fields and returns the updated row.
func (r *DepartmentRepository) Update(ctx context.Context, id int64, p models.DepartmentPatch) (*models.Department, error) {
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
	if p.HeadOfDepartment.Present() {
		set("head_of_department", p.HeadOfDepartment.Ptr())
	}
	set("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE departments SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), departmentColumns)

	var department models.Department
	if err := r.db.GetContext(ctx, &department, query, args...); err != nil {
		return nil, err
	}
	return &department, nil
}

// Delete removes a department, reporting whether a row was actually deleted.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM departments WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete department: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete department result: %w", err)
	}
	return affected > 0, nil
}
