package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sekolah-dev/school-site-api/internal/models"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
)

type registrationRepository interface {
	List(ctx context.Context) ([]models.StudentRegistration, error)
	Create(ctx context.Context, registration *models.StudentRegistration) error
	UpdateStatus(ctx context.Context, id int64, status models.RegistrationStatus) (*models.StudentRegistration, error)
}

// RegistrationService handles prospective-student applications. Creation
// is the public form submission; listing and status transitions belong
// to the admin back office.
type RegistrationService struct {
	repo      registrationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRegistrationService constructs the service.
func NewRegistrationService(repo registrationRepository, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{repo: repo, validator: validate, logger: logger}
}

// CreateRegistrationRequest describes the public registration form.
type CreateRegistrationRequest struct {
	FullName       string    `json:"full_name" validate:"required"`
	DateOfBirth    time.Time `json:"date_of_birth" validate:"required"`
	Gender         string    `json:"gender" validate:"required,oneof=male female"`
	Address        string    `json:"address" validate:"required"`
	PhoneNumber    string    `json:"phone_number" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	ParentName     string    `json:"parent_name" validate:"required"`
	ParentPhone    string    `json:"parent_phone" validate:"required"`
	PreviousSchool string    `json:"previous_school" validate:"required"`
	DesiredMajor   string    `json:"desired_major" validate:"required"`
}

// UpdateStatusRequest moves a registration among pending/approved/rejected.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// List returns every registration, newest first.
func (s *RegistrationService) List(ctx context.Context) ([]models.StudentRegistration, error) {
	registrations, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations")
	}
	return registrations, nil
}

// Create records a new application with status pending.
func (s *RegistrationService) Create(ctx context.Context, req CreateRegistrationRequest) (*models.StudentRegistration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	registration := &models.StudentRegistration{
		FullName:       req.FullName,
		DateOfBirth:    req.DateOfBirth,
		Gender:         models.Gender(req.Gender),
		Address:        req.Address,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		ParentName:     req.ParentName,
		ParentPhone:    req.ParentPhone,
		PreviousSchool: req.PreviousSchool,
		DesiredMajor:   req.DesiredMajor,
		Status:         models.RegistrationStatusPending,
	}
	if err := s.repo.Create(ctx, registration); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create registration")
	}
	return registration, nil
}

// UpdateStatus transitions a registration's status. No other field is
// mutable after creation.
func (s *RegistrationService) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (*models.StudentRegistration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	registration, err := s.repo.UpdateStatus(ctx, id, models.RegistrationStatus(req.Status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "registration not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update registration status")
	}
	return registration, nil
}
