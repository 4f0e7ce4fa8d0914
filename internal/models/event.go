package models

import (
	"time"

	"github.com/sekolah-dev/school-site-api/pkg/patch"
)

// SchoolEvent represents a persisted school event row.
type SchoolEvent struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	EventDate   time.Time `db:"event_date" json:"event_date"`
	Location    *string   `db:"location" json:"location"`
	IsPast      bool      `db:"is_past" json:"is_past"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// SchoolEventPatch carries the fields of a partial event update.
type SchoolEventPatch struct {
	Title       patch.Field[string]    `json:"title"`
	Description patch.Field[string]    `json:"description"`
	EventDate   patch.Field[time.Time] `json:"event_date"`
	Location    patch.Field[string]    `json:"location"`
	IsPast      patch.Field[bool]      `json:"is_past"`
}
