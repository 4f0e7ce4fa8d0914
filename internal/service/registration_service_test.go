package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolah-dev/school-site-api/internal/models"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
)

type mockRegistrationRepo struct {
	items  map[int64]*models.StudentRegistration
	nextID int64
}

func (m *mockRegistrationRepo) List(ctx context.Context) ([]models.StudentRegistration, error) {
	var out []models.StudentRegistration
	for _, r := range m.items {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockRegistrationRepo) Create(ctx context.Context, registration *models.StudentRegistration) error {
	if m.items == nil {
		m.items = make(map[int64]*models.StudentRegistration)
	}
	m.nextID++
	registration.ID = m.nextID
	now := time.Now().UTC()
	registration.CreatedAt = now
	if registration.RegistrationDate.IsZero() {
		registration.RegistrationDate = now
	}
	if registration.Status == "" {
		registration.Status = models.RegistrationStatusPending
	}
	cp := *registration
	m.items[registration.ID] = &cp
	return nil
}

func (m *mockRegistrationRepo) UpdateStatus(ctx context.Context, id int64, status models.RegistrationStatus) (*models.StudentRegistration, error) {
	registration, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	registration.Status = status
	cp := *registration
	return &cp, nil
}

func validRegistrationRequest() CreateRegistrationRequest {
	return CreateRegistrationRequest{
		FullName:       "Siti Rahma",
		DateOfBirth:    time.Date(2010, 4, 2, 0, 0, 0, 0, time.UTC),
		Gender:         "female",
		Address:        "Jl. Merdeka 1",
		PhoneNumber:    "08123",
		Email:          "siti@example.com",
		ParentName:     "Budi",
		ParentPhone:    "08124",
		PreviousSchool: "SMP 1",
		DesiredMajor:   "Science",
	}
}

func TestRegistrationServiceCreateDefaultsStatus(t *testing.T) {
	repo := &mockRegistrationRepo{}
	svc := NewRegistrationService(repo, nil, nil)

	registration, err := svc.Create(context.Background(), validRegistrationRequest())
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusPending, registration.Status)
	assert.False(t, registration.RegistrationDate.IsZero())
}

func TestRegistrationServiceCreateRejectsUnknownGender(t *testing.T) {
	svc := NewRegistrationService(&mockRegistrationRepo{}, nil, nil)

	req := validRegistrationRequest()
	req.Gender = "other"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Details, "gender must be one of: male, female")
}

func TestRegistrationServiceCreateCollectsEveryFailure(t *testing.T) {
	svc := NewRegistrationService(&mockRegistrationRepo{}, nil, nil)

	req := validRegistrationRequest()
	req.FullName = ""
	req.Email = "not-an-email"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details, "full_name is required")
	assert.Contains(t, appErr.Details, "email must be a valid email address")
}

func TestRegistrationServiceUpdateStatus(t *testing.T) {
	repo := &mockRegistrationRepo{}
	svc := NewRegistrationService(repo, nil, nil)

	registration, err := svc.Create(context.Background(), validRegistrationRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), registration.ID, UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationStatusApproved, updated.Status)
}

func TestRegistrationServiceUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := NewRegistrationService(&mockRegistrationRepo{}, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), 1, UpdateStatusRequest{Status: "archived"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details, "status must be one of: pending, approved, rejected")
}

func TestRegistrationServiceUpdateStatusNotFound(t *testing.T) {
	svc := NewRegistrationService(&mockRegistrationRepo{}, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), 404, UpdateStatusRequest{Status: "rejected"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "registration not found", appErr.Message)
}
