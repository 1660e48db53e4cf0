package profile

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centrodrinks/internal/domain"
)

type stubRepo struct {
	profile    *domain.Profile
	getErr     error
	upsertErr  error
	lastUpsert domain.Profile
}

func (s *stubRepo) Get(_ context.Context, _ string) (*domain.Profile, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.profile == nil {
		return nil, domain.ErrNotFound
	}
	return s.profile, nil
}

func (s *stubRepo) Upsert(_ context.Context, p domain.Profile) error {
	s.lastUpsert = p
	return s.upsertErr
}

type stubPhotos struct {
	lastName string
	content  string
}

func (s *stubPhotos) Save(name string, r io.Reader) (string, error) {
	s.lastName = name
	b, _ := io.ReadAll(r)
	s.content = string(b)
	return "http://files.local/" + name, nil
}

func TestGet_MissingProfileIsEmpty(t *testing.T) {
	svc := New(&stubRepo{}, &stubPhotos{})

	p, err := svc.Get(context.Background(), "uid-1")
	require.NoError(t, err)

	assert.Equal(t, "uid-1", p.UID)
	assert.Empty(t, p.Name)
}

func TestSave_MergesOverExisting(t *testing.T) {
	repo := &stubRepo{profile: &domain.Profile{UID: "uid-1", Name: "", Phone: "555"}}
	svc := New(repo, &stubPhotos{})

	saved, err := svc.Save(context.Background(), "uid-1", domain.Profile{Name: "Ana"})
	require.NoError(t, err)

	assert.Equal(t, "Ana", saved.Name)
	assert.Equal(t, "555", saved.Phone)
	assert.Equal(t, "Ana", repo.lastUpsert.Name)
}

func TestSave_NameRequired(t *testing.T) {
	svc := New(&stubRepo{}, &stubPhotos{})

	_, err := svc.Save(context.Background(), "uid-1", domain.Profile{Phone: "555"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestSavePhoto(t *testing.T) {
	repo := &stubRepo{profile: &domain.Profile{UID: "uid-1", Name: "Ana"}}
	photos := &stubPhotos{}
	svc := New(repo, photos)

	url, err := svc.SavePhoto(context.Background(), "uid-1", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "profiles/uid-1.jpg", photos.lastName)
	assert.Equal(t, "jpeg-bytes", photos.content)
	assert.Equal(t, url, repo.lastUpsert.PhotoURL)
	assert.Equal(t, "Ana", repo.lastUpsert.Name, "photo upload keeps the rest of the profile")
}
