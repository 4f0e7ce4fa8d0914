package models

import (
	"time"

	"github.com/sekolah-dev/school-site-api/pkg/patch"
)

// Alumni represents a persisted alumni row.
type Alumni struct {
	ID              int64     `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	GraduationYear  int       `db:"graduation_year" json:"graduation_year"`
	Major           string    `db:"major" json:"major"`
	CurrentPosition *string   `db:"current_position" json:"current_position"`
	Company         *string   `db:"company" json:"company"`
	ContactEmail    *string   `db:"contact_email" json:"contact_email"`
	Bio             *string   `db:"bio" json:"bio"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// AlumniPatch carries the fields of a partial alumni update.
type AlumniPatch struct {
	Name            patch.Field[string] `json:"name"`
	GraduationYear  patch.Field[int]    `json:"graduation_year"`
	Major           patch.Field[string] `json:"major"`
	CurrentPosition patch.Field[string] `json:"current_position"`
	Company         patch.Field[string] `json:"company"`
	ContactEmail    patch.Field[string] `json:"contact_email"`
	Bio             patch.Field[string] `json:"bio"`
}
