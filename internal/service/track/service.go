package track

import (
	"context"
	"errors"
	"log"
	"time"

	"centrodrinks/internal/domain"
	"centrodrinks/internal/geo"
)

type courierRepo interface {
	Latest(ctx context.Context) (*domain.CourierPosition, error)
}

type locationRepo interface {
	Get(ctx context.Context, uid string) (*domain.UserLocation, error)
}

// Service estimates delivery progress from the user's saved location and
// the latest courier position.
type Service struct {
	couriers courierRepo
	users    locationRepo
	logger   *log.Logger
}

func New(couriers courierRepo, users locationRepo, logger *log.Logger) *Service {
	return &Service{couriers: couriers, users: users, logger: logger}
}

// Estimate is a point-in-time distance/ETA reading.
type Estimate struct {
	User       domain.Coordinate `json:"userCoordinate"`
	Courier    domain.Coordinate `json:"courierCoordinate"`
	DistanceKm float64           `json:"distanceKm"`
	EtaMinutes int               `json:"etaMinutes"`
}

// Estimate computes distance and ETA between the user and the courier.
// ok is false when either coordinate is unknown; that is not an error.
func (s *Service) Estimate(ctx context.Context, uid string) (*Estimate, bool, error) {
	user, err := s.users.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, &domain.PersistenceError{Op: "get user location", Err: err}
	}

	courier, err := s.couriers.Latest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, &domain.PersistenceError{Op: "get courier position", Err: err}
	}

	km := geo.HaversineKm(user.Coord, courier.Coord)
	return &Estimate{
		User:       user.Coord,
		Courier:    courier.Coord,
		DistanceKm: km,
		EtaMinutes: geo.EtaMinutes(km),
	}, true, nil
}

// Watch polls the courier position and pushes each change on the returned
// channel until ctx is cancelled. The channel is closed on cancellation, so
// a torn-down consumer stops receiving; slow consumers miss intermediate
// positions rather than blocking the poll loop.
func (s *Service) Watch(ctx context.Context, interval time.Duration) <-chan domain.CourierPosition {
	updates := make(chan domain.CourierPosition, 1)

	go func() {
		defer close(updates)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var last *domain.CourierPosition
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			pos, err := s.couriers.Latest(ctx)
			if err != nil {
				if !errors.Is(err, domain.ErrNotFound) && ctx.Err() == nil {
					s.logger.Printf("poll courier position: %v", err)
				}
				continue
			}
			if last != nil && last.Coord == pos.Coord && last.UpdatedAt.Equal(pos.UpdatedAt) {
				continue
			}
			last = pos

			select {
			case updates <- *pos:
			default:
			}
		}
	}()

	return updates
}
