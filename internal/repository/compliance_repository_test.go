package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiep/askiep-api/internal/models"
)

func TestComplianceRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewComplianceRepository(db)

	mock.ExpectExec("INSERT INTO compliance_logs").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	log := &models.ComplianceLog{
		ChildID:     "p-1",
		Date:        time.Now(),
		ServiceType: "Speech Therapy",
		Status:      models.ComplianceReceived,
	}
	err := repo.Create(context.Background(), log)
	require.NoError(t, err)
	assert.NotEmpty(t, log.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplianceRepositoryListByChild(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewComplianceRepository(db)

	rows := sqlmock.NewRows([]string{"id", "child_id", "date", "service_type", "status", "notes", "created_at"}).
		AddRow("c-2", "p-1", time.Now(), "OT", "Partial", "", time.Now()).
		AddRow("c-1", "p-1", time.Now().Add(-24*time.Hour), "Speech Therapy", "Received", "", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM compliance_logs WHERE child_id = $1 ORDER BY date DESC, created_at DESC")).
		WithArgs("p-1").
		WillReturnRows(rows)

	logs, err := repo.ListByChild(context.Background(), "p-1")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.CompliancePartial, logs[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplianceRepositoryListEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewComplianceRepository(db)

	mock.ExpectQuery("FROM compliance_logs WHERE child_id").
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "child_id", "date", "service_type", "status", "notes", "created_at"}))

	logs, err := repo.ListByChild(context.Background(), "p-1")
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
