package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sekolah-dev/school-site-api/internal/models"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
)

const publishedNewsCacheKey = "news:published"

type newsRepository interface {
	List(ctx context.Context) ([]models.NewsArticle, error)
	ListPublished(ctx context.Context) ([]models.NewsArticle, error)
	Create(ctx context.Context, article *models.NewsArticle) error
	Update(ctx context.Context, id int64, p models.NewsArticlePatch) (*models.NewsArticle, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type newsCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// NewsService handles news article workflows. The published listing is
// the public landing page's hottest read, so it goes through an optional
// redis read-through cache invalidated by every news mutation.
type NewsService struct {
	repo      newsRepository
	cache     newsCache
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNewsService constructs the service. cache may be nil, in which case
// every read goes straight to storage.
func NewNewsService(repo newsRepository, cache newsCache, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *NewsService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NewsService{repo: repo, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger}
}

// CreateNewsArticleRequest describes the create payload. PublishedAt
// defaults to the creation moment and IsPublished to false.
type CreateNewsArticleRequest struct {
	Title       string     `json:"title" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	Excerpt     *string    `json:"excerpt"`
	Author      string     `json:"author" validate:"required"`
	PublishedAt *time.Time `json:"published_at"`
	IsPublished bool       `json:"is_published"`
}

// List returns every article, published or not.
func (s *NewsService) List(ctx context.Context) ([]models.NewsArticle, error) {
	articles, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list news articles")
	}
	return articles, nil
}

// ListPublished returns only published articles.
func (s *NewsService) ListPublished(ctx context.Context) ([]models.NewsArticle, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, publishedNewsCacheKey).Result()
		if err == nil {
			var cached []models.NewsArticle
			if unmarshalErr := json.Unmarshal([]byte(raw), &cached); unmarshalErr == nil {
				return cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("published news cache read failed", zap.Error(err))
		}
	}

	articles, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list published news articles")
	}

	if s.cache != nil {
		if payload, marshalErr := json.Marshal(articles); marshalErr == nil {
			if err := s.cache.Set(ctx, publishedNewsCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("published news cache write failed", zap.Error(err))
			}
		}
	}
	return articles, nil
}

// Create registers a new article.
func (s *NewsService) Create(ctx context.Context, req CreateNewsArticleRequest) (*models.NewsArticle, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	article := &models.NewsArticle{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Author:      req.Author,
		IsPublished: req.IsPublished,
	}
	if req.PublishedAt != nil {
		article.PublishedAt = *req.PublishedAt
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create news article")
	}
	s.invalidate(ctx)
	return article, nil
}

// Update applies a partial update to an existing article.
func (s *NewsService) Update(ctx context.Context, id int64, p models.NewsArticlePatch) (*models.NewsArticle, error) {
	var details []string
	if p.Title.Present() {
		if v, ok := p.Title.Value(); !ok || v == "" {
			details = append(details, "title must be a non-empty string")
		}
	}
	if p.Content.Present() {
		if v, ok := p.Content.Value(); !ok || v == "" {
			details = append(details, "content must be a non-empty string")
		}
	}
	if p.Author.Present() {
		if v, ok := p.Author.Value(); !ok || v == "" {
			details = append(details, "author must be a non-empty string")
		}
	}
	if p.PublishedAt.Present() {
		if v, ok := p.PublishedAt.Value(); !ok || v.IsZero() {
			details = append(details, "published_at must be a valid date")
		}
	}
	if p.IsPublished.Present() && p.IsPublished.Null() {
		details = append(details, "is_published cannot be null")
	}
	if len(details) > 0 {
		return nil, appErrors.Validation(details...)
	}

	article, err := s.repo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "news article not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update news article")
	}
	s.invalidate(ctx)
	return article, nil
}

// Delete removes an article.
func (s *NewsService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete news article")
	}
	if deleted {
		s.invalidate(ctx)
	}
	return deleted, nil
}

func (s *NewsService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, publishedNewsCacheKey).Err(); err != nil {
		s.logger.Warn("published news cache invalidation failed", zap.Error(err))
	}
}
