package ports

import (
	"context"
	"time"

	"github.com/ujen5173/Ridezio-sub000/internal/domain"
)

type ReservationRepo interface {
	// Create re-validates availability and inserts the reservation inside one
	// transaction scoped to the vehicle. On contention it returns
	// *domain.InsufficientAvailabilityError with the remaining quantity.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// UpdateStatus moves the reservation to the target status iff its current
	// status is in from.
	UpdateStatus(ctx context.Context, id string, from []domain.ReservationStatus, to domain.ReservationStatus) error
	ListActiveByVehicle(ctx context.Context, vehicleID string) ([]*domain.Reservation, error)
	ListActiveInRange(ctx context.Context, vehicleID string, rng domain.DateRange) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	CancelExpiredPending(ctx context.Context, ttl time.Duration) ([]*domain.Reservation, error)
}
