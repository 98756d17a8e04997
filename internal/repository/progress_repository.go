package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/askiep/askiep-api/internal/models"
)

// ProgressRepository manages goal-progress history rows.
type ProgressRepository struct {
	db *sqlx.DB
}

// NewProgressRepository constructs a new repository.
func NewProgressRepository(db *sqlx.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create appends a progress measurement. Progress is a history of rows,
// never an in-place update.
func (r *ProgressRepository) Create(ctx context.Context, entry *models.GoalProgress) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.LastUpdated.IsZero() {
		entry.LastUpdated = time.Now().UTC()
	}
	query := `INSERT INTO goal_progress (id, child_id, goal_name, current_value, target_value, status, last_updated)
VALUES (:id, :child_id, :goal_name, :current_value, :target_value, :status, :last_updated)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create goal progress: %w", err)
	}
	return nil
}

// ListByChild returns progress entries newest-first.
func (r *ProgressRepository) ListByChild(ctx context.Context, childID string) ([]models.GoalProgress, error) {
	entries := []models.GoalProgress{}
	query := `SELECT id, child_id, goal_name, current_value, target_value, status, last_updated
FROM goal_progress WHERE child_id = $1 ORDER BY last_updated DESC`
	if err := r.db.SelectContext(ctx, &entries, query, childID); err != nil {
		return nil, fmt.Errorf("list goal progress: %w", err)
	}
	return entries, nil
}
