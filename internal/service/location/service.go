package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"centrodrinks/internal/domain"
	locrepo "centrodrinks/internal/repository/location"
)

// Geocoder resolves a coordinate to a free-text address. Implementations
// wrap whatever external provider the deployment has available.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, c domain.Coordinate) (string, error)
}

// Cache is the persisted key→string store consulted before the database.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

type Service struct {
	repo     locrepo.Repository
	cache    Cache
	geocoder Geocoder
	logger   *log.Logger
}

func New(repo locrepo.Repository, cache Cache, geocoder Geocoder, logger *log.Logger) *Service {
	return &Service{repo: repo, cache: cache, geocoder: geocoder, logger: logger}
}

// Save records the user's location. An empty address is reverse-geocoded
// when a geocoder is configured; geocoding failure keeps the coordinate
// and leaves the address empty.
func (s *Service) Save(ctx context.Context, uid string, coord domain.Coordinate, address string) (*domain.UserLocation, error) {
	if address == "" && s.geocoder != nil {
		resolved, err := s.geocoder.ReverseGeocode(ctx, coord)
		if err != nil {
			s.logger.Printf("reverse geocode for %s: %v", uid, err)
		} else {
			address = resolved
		}
	}

	loc := domain.UserLocation{UID: uid, Coord: coord, Address: address}
	if err := s.repo.Upsert(ctx, loc); err != nil {
		return nil, &domain.PersistenceError{Op: "save location", Err: err}
	}

	if data, err := json.Marshal(loc); err == nil {
		if err := s.cache.Set(cacheKey(uid), string(data)); err != nil {
			s.logger.Printf("cache location for %s: %v", uid, err)
		}
	}
	return &loc, nil
}

// Get returns the last known location, consulting the local cache before
// the database.
func (s *Service) Get(ctx context.Context, uid string) (*domain.UserLocation, error) {
	if raw, ok := s.cache.Get(cacheKey(uid)); ok {
		var loc domain.UserLocation
		if err := json.Unmarshal([]byte(raw), &loc); err == nil {
			loc.UID = uid
			return &loc, nil
		}
		// Fall through to the database on a stale or corrupt entry.
	}

	loc, err := s.repo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, &domain.PersistenceError{Op: "get location", Err: err}
	}
	return loc, nil
}

func cacheKey(uid string) string {
	return "location:" + uid
}

// CoordinateGeocoder labels a point with its raw coordinates. It stands in
// for a real provider in deployments without one.
type CoordinateGeocoder struct{}

func (CoordinateGeocoder) ReverseGeocode(_ context.Context, c domain.Coordinate) (string, error) {
	return fmt.Sprintf("%.5f, %.5f", c.Latitude, c.Longitude), nil
}
