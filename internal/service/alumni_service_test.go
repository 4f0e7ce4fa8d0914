package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolah-dev/school-site-api/internal/models"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
	"github.com/sekolah-dev/school-site-api/pkg/patch"
)

type mockAlumniRepo struct {
	items  map[int64]*models.Alumni
	nextID int64
}

func (m *mockAlumniRepo) List(ctx context.Context) ([]models.Alumni, error) {
	var out []models.Alumni
	for _, a := range m.items {
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockAlumniRepo) Create(ctx context.Context, alumni *models.Alumni) error {
	if m.items == nil {
		m.items = make(map[int64]*models.Alumni)
	}
	m.nextID++
	alumni.ID = m.nextID
	cp := *alumni
	m.items[alumni.ID] = &cp
	return nil
}

func (m *mockAlumniRepo) Update(ctx context.Context, id int64, p models.AlumniPatch) (*models.Alumni, error) {
	alumni, ok := m.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if v, ok := p.Name.Value(); ok {
		alumni.Name = v
	}
	if v, ok := p.GraduationYear.Value(); ok {
		alumni.GraduationYear = v
	}
	if p.ContactEmail.Present() {
		alumni.ContactEmail = p.ContactEmail.Ptr()
	}
	cp := *alumni
	return &cp, nil
}

func (m *mockAlumniRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func TestAlumniServiceCreateRejectsFutureGraduationYear(t *testing.T) {
	svc := NewAlumniService(&mockAlumniRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateAlumniRequest{
		Name:           "Rina",
		GraduationYear: time.Now().Year() + 1,
		Major:          "Science",
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details,
		fmt.Sprintf("graduation_year must be between %d and %d", graduationYearMin, time.Now().Year()))
}

func TestAlumniServiceCreateRejectsBadContactEmail(t *testing.T) {
	svc := NewAlumniService(&mockAlumniRepo{}, nil, nil)

	bad := "not-an-email"
	_, err := svc.Create(context.Background(), CreateAlumniRequest{
		Name:           "Rina",
		GraduationYear: 2020,
		Major:          "Science",
		ContactEmail:   &bad,
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details, "contact_email must be a valid email address")
}

func TestAlumniServiceCreate(t *testing.T) {
	svc := NewAlumniService(&mockAlumniRepo{}, nil, nil)

	alumni, err := svc.Create(context.Background(), CreateAlumniRequest{
		Name:           "Rina",
		GraduationYear: 2020,
		Major:          "Science",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), alumni.ID)
	assert.Nil(t, alumni.ContactEmail)
}

func TestAlumniServiceUpdatePatchValidation(t *testing.T) {
	repo := &mockAlumniRepo{items: map[int64]*models.Alumni{1: {ID: 1, Name: "Rina"}}}
	svc := NewAlumniService(repo, nil, nil)

	_, err := svc.Update(context.Background(), 1, models.AlumniPatch{
		GraduationYear: patch.Set(1900),
		ContactEmail:   patch.Set("nope"),
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Len(t, appErr.Details, 2)
}

func TestAlumniServiceUpdateClearsContactEmail(t *testing.T) {
	email := "rina@example.com"
	repo := &mockAlumniRepo{items: map[int64]*models.Alumni{
		1: {ID: 1, Name: "Rina", GraduationYear: 2020, Major: "Science", ContactEmail: &email},
	}}
	svc := NewAlumniService(repo, nil, nil)

	alumni, err := svc.Update(context.Background(), 1, models.AlumniPatch{
		ContactEmail: patch.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, alumni.ContactEmail)
}

func TestAlumniServiceUpdateNotFound(t *testing.T) {
	svc := NewAlumniService(&mockAlumniRepo{}, nil, nil)

	_, err := svc.Update(context.Background(), 404, models.AlumniPatch{Name: patch.Set("X")})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "alumni not found", appErr.Message)
}
