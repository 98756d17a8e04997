package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/askiep/askiep-api/internal/models"
)

// DocumentRepository manages the append-only IEP document log.
type DocumentRepository struct {
	db *sqlx.DB
}

// NewDocumentRepository constructs a new repository.
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create appends a new document.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.IepDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO iep_documents (id, child_id, filename, content, analysis_id, created_at)
VALUES (:id, :child_id, :filename, :content, :analysis_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, doc); err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

// ListByChild returns document metadata newest-first. The raw extracted
// text is omitted; list views never need it.
func (r *DocumentRepository) ListByChild(ctx context.Context, childID string) ([]models.IepDocument, error) {
	docs := []models.IepDocument{}
	query := `SELECT id, child_id, filename, analysis_id, created_at
FROM iep_documents WHERE child_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &docs, query, childID); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}
