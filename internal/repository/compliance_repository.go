package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/askiep/askiep-api/internal/models"
)

// ComplianceRepository manages the append-only compliance log.
type ComplianceRepository struct {
	db *sqlx.DB
}

// NewComplianceRepository constructs a new repository.
func NewComplianceRepository(db *sqlx.DB) *ComplianceRepository {
	return &ComplianceRepository{db: db}
}

// Create appends a compliance log entry.
func (r *ComplianceRepository) Create(ctx context.Context, log *models.ComplianceLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO compliance_logs (id, child_id, date, service_type, status, notes, created_at)
VALUES (:id, :child_id, :date, :service_type, :status, :notes, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create compliance log: %w", err)
	}
	return nil
}

// ListByChild returns compliance entries newest-first.
func (r *ComplianceRepository) ListByChild(ctx context.Context, childID string) ([]models.ComplianceLog, error) {
	logs := []models.ComplianceLog{}
	query := `SELECT id, child_id, date, service_type, status, notes, created_at
FROM compliance_logs WHERE child_id = $1 ORDER BY date DESC, created_at DESC`
	if err := r.db.SelectContext(ctx, &logs, query, childID); err != nil {
		return nil, fmt.Errorf("list compliance logs: %w", err)
	}
	return logs, nil
}
