package ports

import (
	"context"

	"github.com/ujen5173/Ridezio-sub000/internal/domain"
)

type VehicleRepo interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
}
