package courier

import (
	"context"

	"centrodrinks/internal/domain"
)

// Repository tracks live courier positions. Writes come from an external
// fulfillment process; this service only reads them.
type Repository interface {
	Upsert(ctx context.Context, pos domain.CourierPosition) error
	Latest(ctx context.Context) (*domain.CourierPosition, error)
}
