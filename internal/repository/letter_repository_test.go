package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiep/askiep-api/internal/models"
)

func TestLetterRepositoryCreateStampsLastEdited(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLetterRepository(db)

	mock.ExpectExec("INSERT INTO letter_drafts").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	draft := &models.LetterDraft{ChildID: "p-1", Title: "Evaluation Request", Content: "Dear Team,"}
	require.NoError(t, repo.Create(context.Background(), draft))
	assert.NotEmpty(t, draft.ID)
	assert.False(t, draft.LastEdited.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLetterRepositoryUpdateMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLetterRepository(db)

	mock.ExpectExec("UPDATE letter_drafts SET").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.LetterDraft{ID: "missing"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLetterRepositoryGetByIDAbsent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLetterRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, child_id, title, content, type, last_edited FROM letter_drafts WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	draft, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, draft)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLetterRepositoryListByChild(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLetterRepository(db)

	rows := sqlmock.NewRows([]string{"id", "child_id", "title", "content", "type", "last_edited"}).
		AddRow("l-1", "p-1", "Evaluation Request", "Dear Team,", "concern", time.Now())
	mock.ExpectQuery("FROM letter_drafts WHERE child_id").
		WithArgs("p-1").
		WillReturnRows(rows)

	drafts, err := repo.ListByChild(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Evaluation Request", drafts[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
