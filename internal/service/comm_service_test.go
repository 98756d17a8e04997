package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiep/askiep-api/internal/models"
	appErrors "github.com/askiep/askiep-api/pkg/errors"
)

type fakeCommRepo struct{ created *models.CommLogEntry }

func (f *fakeCommRepo) Create(_ context.Context, entry *models.CommLogEntry) error {
	f.created = entry
	return nil
}

func (f *fakeCommRepo) ListByChild(context.Context, string) ([]models.CommLogEntry, error) {
	return nil, nil
}

func TestCommServiceAddAcceptsMeetingMethod(t *testing.T) {
	repo := &fakeCommRepo{}
	svc := NewCommService(repo, nil, nil)

	entry, err := svc.Add(context.Background(), AddCommRequest{
		ChildID:     "p-1",
		Date:        "2026-08-28",
		ContactName: "Ms. Rivera",
		Method:      "IEP Meeting",
		Summary:     "Discussed reading goals",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MethodMeeting, entry.Method)
	require.NotNil(t, repo.created)
}

func TestCommServiceAddRejectsUnknownMethod(t *testing.T) {
	svc := NewCommService(&fakeCommRepo{}, nil, nil)

	_, err := svc.Add(context.Background(), AddCommRequest{
		ChildID:     "p-1",
		Date:        "2026-08-28",
		ContactName: "Ms. Rivera",
		Method:      "Carrier Pigeon",
	})
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestCommServiceAddRejectsBadDate(t *testing.T) {
	svc := NewCommService(&fakeCommRepo{}, nil, nil)

	_, err := svc.Add(context.Background(), AddCommRequest{
		ChildID:     "p-1",
		Date:        "yesterday",
		ContactName: "Ms. Rivera",
		Method:      "Email",
	})
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}
