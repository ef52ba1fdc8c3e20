package ports

import (
	"context"

	"github.com/ujen5173/Ridezio-sub000/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, user *domain.User, vehicle *domain.Vehicle, res *domain.Reservation)
	NotifyReservationApproved(ctx context.Context, user *domain.User, vehicle *domain.Vehicle, res *domain.Reservation)
	NotifyReservationRejected(ctx context.Context, user *domain.User, vehicle *domain.Vehicle, res *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, user *domain.User, vehicle *domain.Vehicle, res *domain.Reservation)
}
