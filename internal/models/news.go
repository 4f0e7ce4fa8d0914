package models

import (
	"time"

	"github.com/sekolah-dev/school-site-api/pkg/patch"
)

// NewsArticle represents a persisted news article row.
type NewsArticle struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Content     string    `db:"content" json:"content"`
	Excerpt     *string   `db:"excerpt" json:"excerpt"`
	Author      string    `db:"author" json:"author"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
	IsPublished bool      `db:"is_published" json:"is_published"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// NewsArticlePatch carries the fields of a partial news article update.
type NewsArticlePatch struct {
	Title       patch.Field[string]    `json:"title"`
	Content     patch.Field[string]    `json:"content"`
	Excerpt     patch.Field[string]    `json:"excerpt"`
	Author      patch.Field[string]    `json:"author"`
	PublishedAt patch.Field[time.Time] `json:"published_at"`
	IsPublished patch.Field[bool]      `json:"is_published"`
}
