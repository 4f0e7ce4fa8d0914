package models

import (
	"time"

	"github.com/sekolah-dev/school-site-api/pkg/patch"
)

// Program represents a persisted study program row.
type Program struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	DurationYears int       `db:"duration_years" json:"duration_years"`
	Requirements  *string   `db:"requirements" json:"requirements"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// ProgramPatch carries the fields of a partial program update. Absent
// fields leave the stored value untouched; an explicit null clears a
// nullable column.
type ProgramPatch struct {
	Name          patch.Field[string] `json:"name"`
	Description   patch.Field[string] `json:"description"`
	DurationYears patch.Field[int]    `json:"duration_years"`
	Requirements  patch.Field[string] `json:"requirements"`
}
