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

// LetterRepository manages letter drafts, the only mutable child records.
type LetterRepository struct {
	db *sqlx.DB
}

// NewLetterRepository constructs a new repository.
func NewLetterRepository(db *sqlx.DB) *LetterRepository {
	return &LetterRepository{db: db}
}

// Create inserts a new draft.
func (r *LetterRepository) Create(ctx context.Context, draft *models.LetterDraft) error {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	draft.LastEdited = time.Now().UTC()
	query := `INSERT INTO letter_drafts (id, child_id, title, content, type, last_edited)
VALUES (:id, :child_id, :title, :content, :type, :last_edited)`
	if _, err := r.db.NamedExecContext(ctx, query, draft); err != nil {
		return fmt.Errorf("create letter draft: %w", err)
	}
	return nil
}

// Update re-saves an edited draft and refreshes last_edited.
func (r *LetterRepository) Update(ctx context.Context, draft *models.LetterDraft) error {
	draft.LastEdited = time.Now().UTC()
	query := `UPDATE letter_drafts SET title = :title, content = :content, type = :type, last_edited = :last_edited
WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, draft)
	if err != nil {
		return fmt.Errorf("update letter draft: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetByID fetches one draft, nil when absent.
func (r *LetterRepository) GetByID(ctx context.Context, id string) (*models.LetterDraft, error) {
	var draft models.LetterDraft
	query := `SELECT id, child_id, title, content, type, last_edited FROM letter_drafts WHERE id = $1`
	if err := r.db.GetContext(ctx, &draft, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get letter draft: %w", err)
	}
	return &draft, nil
}

// ListByChild returns drafts most recently edited first.
func (r *LetterRepository) ListByChild(ctx context.Context, childID string) ([]models.LetterDraft, error) {
	drafts := []models.LetterDraft{}
	query := `SELECT id, child_id, title, content, type, last_edited
FROM letter_drafts WHERE child_id = $1 ORDER BY last_edited DESC`
	if err := r.db.SelectContext(ctx, &drafts, query, childID); err != nil {
		return nil, fmt.Errorf("list letter drafts: %w", err)
	}
	return drafts, nil
}
