package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/askiep/askiep-api/internal/models"
)

// CommRepository manages the append-only communication log.
type CommRepository struct {
	db *sqlx.DB
}

// NewCommRepository constructs a new repository.
func NewCommRepository(db *sqlx.DB) *CommRepository {
	return &CommRepository{db: db}
}

// Create appends a communication log entry.
func (r *CommRepository) Create(ctx context.Context, entry *models.CommLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO communication_logs (id, child_id, date, contact_name, method, summary, follow_up_needed, created_at)
VALUES (:id, :child_id, :date, :contact_name, :method, :summary, :follow_up_needed, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create communication log: %w", err)
	}
	return nil
}

// ListByChild returns communication entries newest-first.
func (r *CommRepository) ListByChild(ctx context.Context, childID string) ([]models.CommLogEntry, error) {
	entries := []models.CommLogEntry{}
	query := `SELECT id, child_id, date, contact_name, method, summary, follow_up_needed, created_at
FROM communication_logs WHERE child_id = $1 ORDER BY date DESC, created_at DESC`
	if err := r.db.SelectContext(ctx, &entries, query, childID); err != nil {
		return nil, fmt.Errorf("list communication logs: %w", err)
	}
	return entries, nil
}
