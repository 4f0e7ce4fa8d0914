package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sekolah-dev/school-site-api/internal/models"
)

const newsColumns = "id, title, content, excerpt, author, published_at, is_published, created_at, updated_at"

// NewsRepository handles persistence for news articles.
type NewsRepository struct {
	db *sqlx.DB
}

// NewNewsRepository creates a new repository instance.
func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// List returns every article, most recently published first.
func (r *NewsRepository) List(ctx context.Context) ([]models.NewsArticle, error) {
	query := fmt.Sprintf("SELECT %s FROM news_articles ORDER BY published_at DESC", newsColumns)
	var articles []models.NewsArticle
	if err := r.db.SelectContext(ctx, &articles, query); err != nil {
		return nil, fmt.Errorf("list news articles: %w", err)
	}
	return articles, nil
}

// ListPublished returns only published articles, most recently published first.
func (r *NewsRepository) ListPublished(ctx context.Context) ([]models.NewsArticle, error) {
	query := fmt.Sprintf("SELECT %s FROM news_articles WHERE is_published = TRUE ORDER BY published_at DESC", newsColumns)
	var articles []models.NewsArticle
	if err := r.db.SelectContext(ctx, &articles, query); err != nil {
		return nil, fmt.Errorf("list published news articles: %w", err)
	}
	return articles, nil
}

// Create persists a new article and assigns its identifier.
func (r *NewsRepository) Create(ctx context.Context, article *models.NewsArticle) error {
	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now
	if article.PublishedAt.IsZero() {
		article.PublishedAt = now
	}
	const query = `INSERT INTO news_articles (title, content, excerpt, author, published_at, is_published, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := r.db.GetContext(ctx, &article.ID, query,
		article.Title, article.Content, article.Excerpt, article.Author,
		article.PublishedAt, article.IsPublished,
		article.CreatedAt, article.UpdatedAt); err != nil {
		return fmt.Errorf("create news article: %w", err)
	}
	return nil
}

// Update applies the provided fields and returns the updated row.
func (r *NewsRepository) Update(ctx context.Context, id int64, p models.NewsArticlePatch) (*models.NewsArticle, error) {
	var sets []string
	var args []interface{}
	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if v, ok := p.Title.Value(); ok {
		set("title", v)
	}
	if v, ok := p.Content.Value(); ok {
		set("content", v)
	}
	if p.Excerpt.Present() {
		set("excerpt", p.Excerpt.Ptr())
	}
	if v, ok := p.Author.Value(); ok {
		set("author", v)
	}
	if v, ok := p.PublishedAt.Value(); ok {
		set("published_at", v)
	}
	if v, ok := p.IsPublished.Value(); ok {
		set("is_published", v)
	}
	set("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE news_articles SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), newsColumns)

	var article models.NewsArticle
	if err := r.db.GetContext(ctx, &article, query, args...); err != nil {
		return nil, err
	}
	return &article, nil
}

// Delete removes an article, reporting whether a row was actually deleted.
func (r *NewsRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM news_articles WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete news article: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete news article result: %w", err)
	}
	return affected > 0, nil
}
