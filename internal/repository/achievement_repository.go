package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sekolah-dev/school-site-api/internal/models"
)

const achievementColumns = "id, title, description, achievement_date, recipient, category, created_at, updated_at"

// AchievementRepository handles persistence for achievements.
type AchievementRepository struct {
	db *sqlx.DB
}

// NewAchievementRepository creates a new repository instance.
func NewAchievementRepository(db *sqlx.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// List returns every achievement, most recent achievement date first.
func (r *AchievementRepository) List(ctx context.Context) ([]models.Achievement, error) {
	query := fmt.Sprintf("SELECT %s FROM achievements ORDER BY achievement_date DESC", achievementColumns)
	var achievements []models.Achievement
	if err := r.db.SelectContext(ctx, &achievements, query); err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	return achievements, nil
}

// Create persists a new achievement and assigns its identifier.
func (r *AchievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	now := time.Now().UTC()
	achievement.CreatedAt = now
	achievement.UpdatedAt = now
	const query = `INSERT INTO achievements (title, description, achievement_date, recipient, category, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := r.db.GetContext(ctx, &achievement.ID, query,
		achievement.Title, achievement.Description, achievement.AchievementDate,
		achievement.Recipient, achievement.Category,
		achievement.CreatedAt, achievement.UpdatedAt); err != nil {
		return fmt.Errorf("create achievement: %w", err)
	}
	return nil
}

// Update applies the provided fields and returns the updated row.
func (r *AchievementRepository) Update(ctx context.Context, id int64, p models.AchievementPatch) (*models.Achievement, error) {
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
	if v, ok := p.AchievementDate.Value(); ok {
		set("achievement_date", v)
	}
	if v, ok := p.Recipient.Value(); ok {
		set("recipient", v)
	}
	if v, ok := p.Category.Value(); ok {
		set("category", v)
	}
	set("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE achievements SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), achievementColumns)

	var achievement models.Achievement
	if err := r.db.GetContext(ctx, &achievement, query, args...); err != nil {
		return nil, err
	}
	return &achievement, nil
}

// Delete removes an achievement, reporting whether a row was actually deleted.
func (r *AchievementRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM achievements WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete achievement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete achievement result: %w", err)
	}
	return affected > 0, nil
}
