package ports

import (
	"context"

	"github.com/ujen5173/Ridezio-sub000/internal/domain"
)

// AvailabilityCache is a best-effort read cache for availability queries.
// A nil result with a nil error is a miss. Implementations must never be
// consulted on the commit path.
type AvailabilityCache interface {
	Get(ctx context.Context, vehicleID string, rng domain.DateRange) (*domain.VehicleAvailability, error)
	Set(ctx context.Context, av *domain.VehicleAvailability) error
	Invalidate(ctx context.Context, vehicleID string) error
}
