package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sekolah-dev/school-site-api/internal/models"
)

const registrationColumns = "id, full_name, date_of_birth, gender, address, phone_number, email, parent_name, parent_phone, previous_school, desired_major, registration_date, status, created_at"

// RegistrationRepository handles persistence for student registrations.
// Registrations have no updated_at column; only status changes after
// creation.
type RegistrationRepository struct {
	db *sqlx.DB
}

// NewRegistrationRepository creates a new repository instance.
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// List returns every registration, newest first.
func (r *RegistrationRepository) List(ctx context.Context) ([]models.StudentRegistration, error) {
	query := fmt.Sprintf("SELECT %s FROM student_registrations ORDER BY created_at DESC", registrationColumns)
	var registrations []models.StudentRegistration
	if err := r.db.SelectContext(ctx, &registrations, query); err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return registrations, nil
}

// Create persists a new registration and assigns its identifier.
func (r *RegistrationRepository) Create(ctx context.Context, registration *models.StudentRegistration) error {
	now := time.Now().UTC()
	registration.CreatedAt = now
	if registration.RegistrationDate.IsZero() {
		registration.RegistrationDate = now
	}
	if registration.Status == "" {
		registration.Status = models.RegistrationStatusPending
	}
	const query = `INSERT INTO student_registrations (full_name, date_of_birth, gender, address, phone_number, email, parent_name, parent_phone, previous_school, desired_major, registration_date, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	if err := r.db.GetContext(ctx, &registration.ID, query,
		registration.FullName, registration.DateOfBirth, registration.Gender,
		registration.Address, registration.PhoneNumber, registration.Email,
		registration.ParentName, registration.ParentPhone,
		registration.PreviousSchool, registration.DesiredMajor,
		registration.RegistrationDate, registration.Status,
		registration.CreatedAt); err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

// UpdateStatus moves a registration to the given status and returns the
// updated row. sql.ErrNoRows is returned when the id does not exist.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id int64, status models.RegistrationStatus) (*models.StudentRegistration, error) {
	query := fmt.Sprintf("UPDATE student_registrations SET status = $1 WHERE id = $2 RETURNING %s", registrationColumns)
	var registration models.StudentRegistration
	if err := r.db.GetContext(ctx, &registration, query, status, id); err != nil {
		return nil, err
	}
	return &registration, nil
}
