package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sekolah-dev/school-site-api/internal/models"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
)

type departmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, id int64, p models.DepartmentPatch) (*models.Department, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// DepartmentService handles department workflows.
type DepartmentService struct {
	repo      departmentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDepartmentService constructs the service.
func NewDepartmentService(repo departmentRepository, validate *validator.Validate, logger *zap.Logger) *DepartmentService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{repo: repo, validator: validate, logger: logger}
}

// CreateDepartmentRequest describes the create payload.
type CreateDepartmentRequest struct {
	Name             string  `json:"name" validate:"required"`
	Description      string  `json:"description" validate:"required"`
	HeadOfDepartment *string `json:"head_of_department"`
}

// List returns every department.
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list departments")
	}
	return departments, nil
}

// Create registers a new department.
func (s *DepartmentService) Create(ctx context.Context, req CreateDepartmentRequest) (*models.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	department := &models.Department{
		Name:             req.Name,
		Description:      req.Description,
		HeadOfDepartment: req.HeadOfDepartment,
	}
	if err := s.repo.Create(ctx, department); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create department")
	}
	return department, nil
}

// Update applies a partial update to an existing department.
func (s *DepartmentService) Update(ctx context.Context, id int64, p models.DepartmentPatch) (*models.Department, error) {
	var details []string
	if p.Name.Present() {
		if v, ok := p.Name.Value(); !ok || v == "" {
			details = append(details, "name must be a non-empty string")
		}
	}
	if p.Description.Present() {
		if v, ok := p.Description.Value(); !ok || v == "" {
			details = append(details, "description must be a non-empty string")
		}
	}
	if len(details) > 0 {
		return nil, appErrors.Validation(details...)
	}

	department, err := s.repo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "department not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update department")
	}
	return department, nil
}

// Delete removes a department.
func (s *DepartmentService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete department")
	}
	return deleted, nil
}
