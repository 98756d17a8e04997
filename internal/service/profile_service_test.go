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

type fakeProfileRepo struct {
	latest  *models.ChildProfile
	byID    map[string]*models.ChildProfile
	created *models.ChildProfile
	updated *models.ChildProfile
}

func (f *fakeProfileRepo) GetLatest(context.Context) (*models.ChildProfile, error) {
	return f.latest, nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*models.ChildProfile, error) {
	return f.byID[id], nil
}

func (f *fakeProfileRepo) Create(_ context.Context, profile *models.ChildProfile) error {
	profile.ID = "p-1"
	f.created = profile
	return nil
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *models.ChildProfile) error {
	f.updated = profile
	return nil
}

func TestProfileServiceSaveRequiresName(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{}, nil, nil)

	_, _, err := svc.Save(context.Background(), SaveProfileRequest{Name: "   "})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestProfileServiceSaveCreates(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo, nil, nil)

	profile, created, err := svc.Save(context.Background(), SaveProfileRequest{
		Name:          "Alex",
		Age:           9,
		Disabilities:  []string{"Dyslexia"},
		AdvocacyLevel: "Beginner",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "p-1", profile.ID)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Alex", repo.created.Name)
}

func TestProfileServiceSaveUpdateMissing(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{byID: map[string]*models.ChildProfile{}}, nil, nil)

	_, _, err := svc.Save(context.Background(), SaveProfileRequest{ID: "ghost", Name: "Alex"})
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestProfileServiceSaveUpdatePreservesCreatedAt(t *testing.T) {
	existing := &models.ChildProfile{ID: "p-1", Name: "Old"}
	existing.CreatedAt = existing.CreatedAt.AddDate(0, -1, 0)
	repo := &fakeProfileRepo{byID: map[string]*models.ChildProfile{"p-1": existing}}
	svc := NewProfileService(repo, nil, nil)

	profile, created, err := svc.Save(context.Background(), SaveProfileRequest{ID: "p-1", Name: "Alex"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.CreatedAt, profile.CreatedAt)
}

func TestProfileServiceSaveRejectsUnknownAdvocacyLevel(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{}, nil, nil)

	_, _, err := svc.Save(context.Background(), SaveProfileRequest{Name: "Alex", AdvocacyLevel: "Expert"})
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}
