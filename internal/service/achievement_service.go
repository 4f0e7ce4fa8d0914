package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/sekolah-dev/school-site-api/internal/models"
	appErrors "github.com/sekolah-dev/school-site-api/pkg/errors"
)

type achievementRepository interface {
	List(ctx context.Context) ([]models.Achievement, error)
	Create(ctx context.Context, achievement *models.Achievement) error
	Update(ctx context.Context, id int64, p models.AchievementPatch) (*models.Achievement, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// AchievementService handles achievement workflows.
type AchievementService struct {
	repo      achievementRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAchievementService constructs the service.
func NewAchievementService(repo achievementRepository, validate *validator.Validate, logger *zap.Logger) *AchievementService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AchievementService{repo: repo, validator: validate, logger: logger}
}

// CreateAchievementRequest describes the create payload.
type CreateAchievementRequest struct {
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description" validate:"required"`
	AchievementDate time.Time `json:"achievement_date" validate:"required"`
	Recipient       string    `json:"recipient" validate:"required"`
	Category        string    `json:"category" validate:"required"`
}

// List returns every achievement, most recent first.
func (s *AchievementService) List(ctx context.Context) ([]models.Achievement, error) {
	achievements, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list achievements")
	}
	return achievements, nil
}

// Create registers a new achievement.
func (s *AchievementService) Create(ctx context.Context, req CreateAchievementRequest) (*models.Achievement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	achievement := &models.Achievement{
		Title:           req.Title,
		Description:     req.Description,
		AchievementDate: req.AchievementDate,
		Recipient:       req.Recipient,
		Category:        req.Category,
	}
	if err := s.repo.Create(ctx, achievement); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create achievement")
	}
	return achievement, nil
}

// Update applies a partial update to an existing achievement.
func (s *AchievementService) Update(ctx context.Context, id int64, p models.AchievementPatch) (*models.Achievement, error) {
	var details []string
	if p.Title.Present() {
		if v, ok := p.Title.Value(); !ok || v == "" {
			details = append(details, "title must be a non-empty string")
		}
	}
	if p.Description.Present() {
		if v, ok := p.Description.Value(); !ok || v == "" {
			details = append(details, "description must be a non-empty string")
		}
	}
	if p.Recipient.Present() {
		if v, ok := p.Recipient.Value(); !ok || v == "" {
			details = append(details, "recipient must be a non-empty string")
		}
	}
	if p.Category.Present() {
		if v, ok := p.Category.Value(); !ok || v == "" {
			details = append(details, "category must be a non-empty string")
		}
	}
	if p.AchievementDate.Present() {
		if v, ok := p.AchievementDate.Value(); !ok || v.IsZero() {
			details = append(details, "achievement_date must be a valid date")
		}
	}
	if len(details) > 0 {
		return nil, appErrors.Validation(details...)
	}

	achievement, err := s.repo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "achievement not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update achievement")
	}
	return achievement, nil
}

// Delete removes an achievement.
func (s *AchievementService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete achievement")
	}
	return deleted, nil
}
