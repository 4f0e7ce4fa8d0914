package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sekolah-dev/school-site-api/internal/models"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
)

type alumniRepository interface {
	List(ctx context.Context) ([]models.Alumni, error)
	Create(ctx context.Context, alumni *models.Alumni) error
	Update(ctx context.Context, id int64, p models.AlumniPatch) (*models.Alumni, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// AlumniService handles alumni profile workflows.
type AlumniService struct {
	repo      alumniRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAlumniService constructs the service.
func NewAlumniService(repo alumniRepository, validate *validator.Validate, logger *zap.Logger) *AlumniService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AlumniService{repo: repo, validator: validate, logger: logger}
}

// CreateAlumniRequest describes the create payload.
type CreateAlumniRequest struct {
	Name            string  `json:"name" validate:"required"`
	GraduationYear  int     `json:"graduation_year" validate:"required,gradyear"`
	Major           string  `json:"major" validate:"required"`
	CurrentPosition *string `json:"current_position"`
	Company         *string `json:"company"`
	ContactEmail    *string `json:"contact_email" validate:"omitempty,email"`
	Bio             *string `json:"bio"`
}

// List returns every alumni profile.
func (s *AlumniService) List(ctx context.Context) ([]models.Alumni, error) {
	alumni, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list alumni")
	}
	return alumni, nil
}

// Create registers a new alumni profile.
func (s *AlumniService) Create(ctx context.Context, req CreateAlumniRequest) (*models.Alumni, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	alumni := &models.Alumni{
		Name:            req.Name,
		GraduationYear:  req.GraduationYear,
		Major:           req.Major,
		CurrentPosition: req.CurrentPosition,
		Company:         req.Company,
		ContactEmail:    req.ContactEmail,
		Bio:             req.Bio,
	}
	if err := s.repo.Create(ctx, alumni); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create alumni")
	}
	return alumni, nil
}

// Update applies a partial update to an existing alumni profile.
func (s *AlumniService) Update(ctx context.Context, id int64, p models.AlumniPatch) (*models.Alumni, error) {
	var details []string
	if p.Name.Present() {
		if v, ok := p.Name.Value(); !ok || v == "" {
			details = append(details, "name must be a non-empty string")
		}
	}
	if p.GraduationYear.Present() {
		if v, ok := p.GraduationYear.Value(); !ok || v < graduationYearMin || v > time.Now().Year() {
			details = append(details, fmt.Sprintf("graduation_year must be between %d and %d", graduationYearMin, time.Now().Year()))
		}
	}
	if p.Major.Present() {
		if v, ok := p.Major.Value(); !ok || v == "" {
			details = append(details, "major must be a non-empty string")
		}
	}
	if v, ok := p.ContactEmail.Value(); ok {
		if err := s.validator.Var(v, "email"); err != nil {
			details = append(details, "contact_email must be a valid email address")
		}
	}
	if len(details) > 0 {
		return nil, appErrors.Validation(details...)
	}

	alumni, err := s.repo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "alumni not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update alumni")
	}
	return alumni, nil
}

// Delete removes an alumni profile.
func (s *AlumniService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete alumni")
	}
	return deleted, nil
}
