package models

import (
	"time"

	"github.com/sekolah-dev/school-site-api/pkg/patch"
)

// Achievement represents a persisted achievement row. Category is free
// text used by the public site for grouping.
type Achievement struct {
	ID              int64     `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	AchievementDate time.Time `db:"achievement_date" json:"achievement_date"`
	Recipient       string    `db:"recipient" json:"recipient"`
	Category        string    `db:"category" json:"category"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// AchievementPatch carries the fields of a partial achievement update.
type AchievementPatch struct {
	Title           patch.Field[string]    `json:"title"`
	Description     patch.Field[string]    `json:"description"`
	AchievementDate patch.Field[time.Time] `json:"achievement_date"`
	Recipient       patch.Field[string]    `json:"recipient"`
	Category        patch.Field[string]    `json:"category"`
}
