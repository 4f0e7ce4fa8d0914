package models

import "time"

// Gender enumerates accepted gender values on registration forms.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// RegistrationStatus enumerates the lifecycle of a registration.
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// StudentRegistration represents a prospective-student application.
// Registrations carry no updated_at; status is the only field mutable
// after creation.
type StudentRegistration struct {
	ID               int64              `db:"id" json:"id"`
	FullName         string             `db:"full_name" json:"full_name"`
	DateOfBirth      time.Time          `db:"date_of_birth" json:"date_of_birth"`
	Gender           Gender             `db:"gender" json:"gender"`
	Address          string             `db:"address" json:"address"`
	PhoneNumber      string             `db:"phone_number" json:"phone_number"`
	Email            string             `db:"email" json:"email"`
	ParentName       string             `db:"parent_name" json:"parent_name"`
	ParentPhone      string             `db:"parent_phone" json:"parent_phone"`
	PreviousSchool   string             `db:"previous_school" json:"previous_school"`
	DesiredMajor     string             `db:"desired_major" json:"desired_major"`
	RegistrationDate time.Time          `db:"registration_date" json:"registration_date"`
	Status           RegistrationStatus `db:"status" json:"status"`
	CreatedAt        time.Time          `db:"created_at" json:"created_at"`
}
