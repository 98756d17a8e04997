package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/askiep/askiep-api/internal/models"
)

// AnalysisRepository manages persistence for AI analyses.
type AnalysisRepository struct {
	db *sqlx.DB
}

// NewAnalysisRepository constructs a new repository.
func NewAnalysisRepository(db *sqlx.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create inserts a new analysis. Analyses are immutable after creation.
func (r *AnalysisRepository) Create(ctx context.Context, analysis *models.IepAnalysis) error {
	if analysis.ID == "" {
		analysis.ID = uuid.NewString()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO iep_analyses (id, child_id, summary, goals, accommodations, red_flags, legal_lens, service_grid, created_at)
VALUES (:id, :child_id, :summary, :goals, :accommodations, :red_flags, :legal_lens, :service_grid, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, analysis); err != nil {
		return fmt.Errorf("create analysis: %w", err)
	}
	return nil
}

// GetLatestByChild returns the newest analysis for a profile, nil when none.
func (r *AnalysisRepository) GetLatestByChild(ctx context.Context, childID string) (*models.IepAnalysis, error) {
	var analysis models.IepAnalysis
	query := `SELECT id, child_id, summary, goals, accommodations, red_flags, legal_lens, service_grid, created_at
FROM iep_analyses WHERE child_id = $1 ORDER BY created_at DESC LIMIT 1`
	if err := r.db.GetContext(ctx, &analysis, query, childID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest analysis: %w", err)
	}
	return &analysis, nil
}
