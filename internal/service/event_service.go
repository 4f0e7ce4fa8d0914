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

type eventRepository interface {
	List(ctx context.Context) ([]models.SchoolEvent, error)
	Create(ctx context.Context, event *models.SchoolEvent) error
	Update(ctx context.Context, id int64, p models.SchoolEventPatch) (*models.SchoolEvent, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EventService handles school event workflows.
type EventService struct {
	repo      eventRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(repo eventRepository, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, validator: validate, logger: logger}
}

// CreateEventRequest describes the create payload. IsPast defaults to
// false when omitted.
type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	EventDate   time.Time `json:"event_date" validate:"required"`
	Location    *string   `json:"location"`
	IsPast      bool      `json:"is_past"`
}

// List returns every school event.
func (s *EventService) List(ctx context.Context) ([]models.SchoolEvent, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list school events")
	}
	return events, nil
}

// Create registers a new school event.
func (s *EventService) Create(ctx context.Context, req CreateEventRequest) (*models.SchoolEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	event := &models.SchoolEvent{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		IsPast:      req.IsPast,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create school event")
	}
	return event, nil
}

// Update applies a partial update to an existing school event.
func (s *EventService) Update(ctx context.Context, id int64, p models.SchoolEventPatch) (*models.SchoolEvent, error) {
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
	if p.EventDate.Present() {
		if v, ok := p.EventDate.Value(); !ok || v.IsZero() {
			details = append(details, "event_date must be a valid date")
		}
	}
	if p.IsPast.Present() && p.IsPast.Null() {
		details = append(details, "is_past cannot be null")
	}
	if len(details) > 0 {
		return nil, appErrors.Validation(details...)
	}

	event, err := s.repo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "school event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update school event")
	}
	return event, nil
}

// Delete removes a school event.
func (s *EventService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete school event")
	}
	return deleted, nil
}
