package profile

import (
	"context"
	"errors"
	"io"
	"strings"

	"centrodrinks/internal/domain"
	profilerepo "centrodrinks/internal/repository/profile"
)

// PhotoStore persists an uploaded photo and returns its public URL.
type PhotoStore interface {
	Save(name string, r io.Reader) (string, error)
}

type Service struct {
	repo   profilerepo.Repository
	photos PhotoStore
}

func New(repo profilerepo.Repository, photos PhotoStore) *Service {
	return &Service{repo: repo, photos: photos}
}

// Get returns the stored profile, or an empty one when the user has not
// saved anything yet.
func (s *Service) Get(ctx context.Context, uid string) (*domain.Profile, error) {
	p, err := s.repo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Profile{UID: uid}, nil
		}
		return nil, &domain.PersistenceError{Op: "get profile", Err: err}
	}
	return p, nil
}

// Save merges edits into the stored profile and persists the result. The
// merged profile must carry a name.
func (s *Service) Save(ctx context.Context, uid string, edits domain.Profile) (*domain.Profile, error) {
	existing, err := s.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	merged := Merge(*existing, edits)
	merged.UID = uid
	if strings.TrimSpace(merged.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "required"}
	}

	if err := s.repo.Upsert(ctx, merged); err != nil {
		return nil, &domain.PersistenceError{Op: "save profile", Err: err}
	}
	return &merged, nil
}

// SavePhoto stores the uploaded image and records its URL on the profile.
func (s *Service) SavePhoto(ctx context.Context, uid string, r io.Reader) (string, error) {
	url, err := s.photos.Save("profiles/"+uid+".jpg", r)
	if err != nil {
		return "", &domain.PersistenceError{Op: "store photo", Err: err}
	}

	existing, err := s.Get(ctx, uid)
	if err != nil {
		return "", err
	}
	existing.PhotoURL = url
	existing.UID = uid
	if err := s.repo.Upsert(ctx, *existing); err != nil {
		return "", &domain.PersistenceError{Op: "save profile", Err: err}
	}
	return url, nil
}
