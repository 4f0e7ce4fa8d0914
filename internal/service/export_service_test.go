package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolah-dev/school-site-api/internal/models"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
)

func exportFixtureRepo() *mockRegistrationRepo {
	return &mockRegistrationRepo{items: map[int64]*models.StudentRegistration{
		1: {
			ID:               1,
			FullName:         "Siti Rahma",
			DateOfBirth:      time.Date(2010, 4, 2, 0, 0, 0, 0, time.UTC),
			Gender:           models.GenderFemale,
			Email:            "siti@example.com",
			PhoneNumber:      "08123",
			ParentName:       "Budi",
			PreviousSchool:   "SMP 1",
			DesiredMajor:     "Science",
			RegistrationDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			Status:           models.RegistrationStatusPending,
		},
	}}
}

func TestExportServiceRegistrationsCSV(t *testing.T) {
	svc := NewExportService(exportFixtureRepo(), nil)

	file, err := svc.Registrations(context.Background(), ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasSuffix(file.FileName, ".csv"))

	body := string(file.Content)
	assert.Contains(t, body, "Full Name")
	assert.Contains(t, body, "Siti Rahma")
	assert.Contains(t, body, "2010-04-02")
	assert.Contains(t, body, "pending")
}

func TestExportServiceRegistrationsPDF(t *testing.T) {
	svc := NewExportService(exportFixtureRepo(), nil)

	file, err := svc.Registrations(context.Background(), ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasSuffix(file.FileName, ".pdf"))
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(exportFixtureRepo(), nil)

	_, err := svc.Registrations(context.Background(), ExportFormat("xlsx"))
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Details, "format must be one of: csv, pdf")
}
