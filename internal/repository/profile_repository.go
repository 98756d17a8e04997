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

// ProfileRepository manages persistence for child profiles.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository constructs a new repository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, name, age, grade, disabilities, focus_tags, advocacy_level, primary_goal, state_context, last_iep_date, created_at`

// GetLatest returns the most recently created profile, or nil when the
// installation has no profile yet.
func (r *ProfileRepository) GetLatest(ctx context.Context) (*models.ChildProfile, error) {
	var profile models.ChildProfile
	query := fmt.Sprintf("SELECT %s FROM child_profiles ORDER BY created_at DESC LIMIT 1", profileColumns)
	if err := r.db.GetContext(ctx, &profile, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest profile: %w", err)
	}
	return &profile, nil
}

// GetByID fetches a profile by its identifier.
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.ChildProfile, error) {
	var profile models.ChildProfile
	query := fmt.Sprintf("SELECT %s FROM child_profiles WHERE id = $1", profileColumns)
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Create inserts a new profile.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.ChildProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	profile.CreatedAt = now
	if profile.LastIepDate.IsZero() {
		profile.LastIepDate = now
	}
	if profile.Disabilities == nil {
		profile.Disabilities = []string{}
	}
	if profile.FocusTags == nil {
		profile.FocusTags = []string{}
	}
	query := `INSERT INTO child_profiles (id, name, age, grade, disabilities, focus_tags, advocacy_level, primary_goal, state_context, last_iep_date, created_at)
VALUES (:id, :name, :age, :grade, :disabilities, :focus_tags, :advocacy_level, :primary_goal, :state_context, :last_iep_date, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

// Update modifies an existing profile in place.
func (r *ProfileRepository) Update(ctx context.Context, profile *models.ChildProfile) error {
	if profile.Disabilities == nil {
		profile.Disabilities = []string{}
	}
	if profile.FocusTags == nil {
		profile.FocusTags = []string{}
	}
	query := `UPDATE child_profiles SET name = :name, age = :age, grade = :grade, disabilities = :disabilities, focus_tags = :focus_tags,
advocacy_level = :advocacy_level, primary_goal = :primary_goal, state_context = :state_context, last_iep_date = :last_iep_date
WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a profile; dependent records cascade in the schema.
func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM child_profiles WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
