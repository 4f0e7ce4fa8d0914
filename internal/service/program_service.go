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

type programRepository interface {
	List(ctx context.Context) ([]models.Program, error)
	Create(ctx context.Context, program *models.Program) error
	Update(ctx context.Context, id int64, p models.ProgramPatch) (*models.Program, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ProgramService handles study program workflows.
type ProgramService struct {
	repo      programRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProgramService constructs the service.
func NewProgramService(repo programRepository, validate *validator.Validate, logger *zap.Logger) *ProgramService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgramService{repo: repo, validator: validate, logger: logger}
}

// CreateProgramRequest describes the create payload.
type CreateProgramRequest struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	DurationYears int     `json:"duration_years" validate:"required,gt=0"`
	Requirements  *string `json:"requirements"`
}

// List returns every program.
func (s *ProgramService) List(ctx context.Context) ([]models.Program, error) {
	programs, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list programs")
	}
	return programs, nil
}

// Create registers a new program.
func (s *ProgramService) Create(ctx context.Context, req CreateProgramRequest) (*models.Program, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	program := &models.Program{
		Name:          req.Name,
		Description:   req.Description,
		DurationYears: req.DurationYears,
		Requirements:  req.Requirements,
	}
	if err := s.repo.Create(ctx, program); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create program")
	}
	return program, nil
}

// Update applies a partial update to an existing program.
func (s *ProgramService) Update(ctx context.Context, id int64, p models.ProgramPatch) (*models.Program, error) {
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
	if p.DurationYears.Present() {
		if v, ok := p.DurationYears.Value(); !ok || v <= 0 {
			details = append(details, "duration_years must be a positive integer")
		}
	}
	if len(details) > 0 {
		return nil, appErrors.Validation(details...)
	}

	program, err := s.repo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "program not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update program")
	}
	return program, nil
}

// Delete removes a program. The returned flag reports whether a row was
// actually deleted.
func (s *ProgramService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete program")
	}
	return deleted, nil
}
