package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sekolah-dev/school-site-api/internal/models"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
	"github.com/sekolah-dev/school-site-api/pkg/export"
)

// ExportFormat selects the rendering of a roster export.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered export ready to stream to the caller.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportService renders admin exports of the registration roster.
type ExportService struct {
	registrations registrationRepository
	csv           *export.CSVExporter
	pdf           *export.PDFExporter
	logger        *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(registrations registrationRepository, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		registrations: registrations,
		csv:           export.NewCSVExporter(),
		pdf:           export.NewPDFExporter(),
		logger:        logger,
	}
}

// Registrations renders the full registration roster in the requested format.
func (s *ExportService) Registrations(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Validation("format must be one of: csv, pdf")
	}

	rows, err := s.registrations.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load registrations")
	}

	table := registrationTable(rows)
	name := fmt.Sprintf("registrations-%s-%s", time.Now().UTC().Format("20060102"), uuid.NewString()[:8])

	switch format {
	case ExportFormatPDF:
		content, err := s.pdf.Render(table, "Student Registrations")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportFile{FileName: name + ".pdf", ContentType: "application/pdf", Content: content}, nil
	default:
		content, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportFile{FileName: name + ".csv", ContentType: "text/csv", Content: content}, nil
	}
}

func registrationTable(rows []models.StudentRegistration) export.Table {
	table := export.Table{
		Headers: []string{"ID", "Full Name", "Date of Birth", "Gender", "Email", "Phone", "Parent", "Previous School", "Desired Major", "Registered", "Status"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", r.ID),
			r.FullName,
			r.DateOfBirth.Format("2006-01-02"),
			string(r.Gender),
			r.Email,
			r.PhoneNumber,
			r.ParentName,
			r.PreviousSchool,
			r.DesiredMajor,
			r.RegistrationDate.Format("2006-01-02"),
			string(r.Status),
		})
	}
	return table
}
