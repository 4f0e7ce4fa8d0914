package models

import (
	"time"

	"github.com/sekolah-dev/school-site-api/pkg/patch"
)

// Department represents a persisted department row.
type Department struct {
	ID               int64     `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Description      string    `db:"description" json:"description"`
	HeadOfDepartment *string   `db:"head_of_department" json:"head_of_department"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// DepartmentPatch carries the fields of a partial department update.
type DepartmentPatch struct {
	Name             patch.Field[string] `json:"name"`
	Description      patch.Field[string] `json:"description"`
	HeadOfDepartment patch.Field[string] `json:"head_of_department"`
}
