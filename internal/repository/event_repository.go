package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sekolah-dev/school-site-api/internal/models"
)

const eventColumns = "id, title, description, event_date, location, is_past, created_at, updated_at"

// EventRepository handles persistence for school events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a new repository instance.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns every school event in insertion order.
func (r *EventRepository) List(ctx context.Context) ([]models.SchoolEvent, error) {
	query := fmt.Sprintf("SELECT %s FROM school_events ORDER BY id", eventColumns)
	var events []models.SchoolEvent
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list school events: %w", err)
	}
	return events, nil
}

// Create persists a new school event and assigns its identifier.
func (r *EventRepository) Create(ctx context.Context, event *models.SchoolEvent) error {
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	const query = `INSERT INTO school_events (title, description, event_date, location, is_past, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := r.db.GetContext(ctx, &event.ID, query,
		event.Title, event.Description, event.EventDate, event.Location, event.IsPast,
		event.CreatedAt, event.UpdatedAt); err != nil {
		return fmt.Errorf("create school event: %w", err)
	}
	return nil
}

// Update applies the provided fields and returns the updated row.
func (r *EventRepository) Update(ctx context.Context, id int64, p models.SchoolEventPatch) (*models.SchoolEvent, error) {
	var sets []string
	var args []interface{}
	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if v, ok := p.Title.Value(); ok {
		set("title", v)
	}
	if v, ok := p.Description.Value(); ok {
		set("description", v)
	}
	if v, ok := p.EventDate.Value(); ok {
		set("event_date", v)
	}
	if p.Location.Present() {
		set("location", p.Location.Ptr())
	}
	if v, ok := p.IsPast.Value(); ok {
		set("is_past", v)
	}
	set("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE school_events SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), eventColumns)

	var event models.SchoolEvent
	if err := r.db.GetContext(ctx, &event, query, args...); err != nil {
		return nil, err
	}
	return &event, nil
}

// Delete removes a school event, reporting whether a row was actually deleted.
func (r *EventRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM school_events WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete school event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete school event result: %w", err)
	}
	return affected > 0, nil
}
