package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/askiep/askiep-api/internal/models"
)

// BehaviorRepository manages the append-only behavior log.
type BehaviorRepository struct {
	db *sqlx.DB
}

// NewBehaviorRepository constructs a new repository.
func NewBehaviorRepository(db *sqlx.DB) *BehaviorRepository {
	return &BehaviorRepository{db: db}
}

// Create appends a behavior observation.
func (r *BehaviorRepository) Create(ctx context.Context, log *models.BehaviorLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO behavior_logs (id, child_id, date, time, antecedent, behavior, consequence, intensity, duration_minutes, notes, created_at)
VALUES (:id, :child_id, :date, :time, :antecedent, :behavior, :consequence, :intensity, :duration_minutes, :notes, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create behavior log: %w", err)
	}
	return nil
}

// ListByChild returns behavior entries newest-first.
func (r *BehaviorRepository) ListByChild(ctx context.Context, childID string) ([]models.BehaviorLog, error) {
	logs := []models.BehaviorLog{}
	query := `SELECT id, child_id, date, time, antecedent, behavior, consequence, intensity, duration_minutes, notes, created_at
FROM behavior_logs WHERE child_id = $1 ORDER BY date DESC, created_at DESC`
	if err := r.db.SelectContext(ctx, &logs, query, childID); err != nil {
		return nil, fmt.Errorf("list behavior logs: %w", err)
	}
	return logs, nil
}
