package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ujen5173/Ridezio-sub000/internal/domain"
	"github.com/ujen5173/Ridezio-sub000/internal/service/ports"
)

type VehicleService struct {
	repo            ports.VehicleRepo
	reservationRepo ports.ReservationRepo
}

func NewVehicleService(repo ports.VehicleRepo, reservationRepo ports.ReservationRepo) *VehicleService {
	return &VehicleService{
		repo:            repo,
		reservationRepo: reservationRepo,
	}
}

func (s *VehicleService) Create(ctx context.Context, input domain.CreateVehicleInput) (*domain.Vehicle, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Inventory < 0 {
		return nil, fmt.Errorf("%w: inventory must not be negative", domain.ErrValidation)
	}
	if input.PricePerDay < 0 {
		return nil, fmt.Errorf("%w: price_per_day must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	vehicle := &domain.Vehicle{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Brand:       input.Brand,
		Inventory:   input.Inventory,
		PricePerDay: input.PricePerDay,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	return vehicle, nil
}

func (s *VehicleService) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VehicleService) GetDetails(ctx context.Context, id string) (*domain.VehicleDetails, error) {
	vehicle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.ListActiveByVehicle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	details := &domain.VehicleDetails{
		Vehicle:      *vehicle,
		Reservations: make([]domain.Reservation, len(reservations)),
	}
	for i, r := range reservations {
		details.Reservations[i] = *r
	}

	return details, nil
}

func (s *VehicleService) List(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.repo.List(ctx)
}
