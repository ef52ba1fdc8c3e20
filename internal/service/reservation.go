package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ujen5173/Ridezio-sub000/internal/availability"
	"github.com/ujen5173/Ridezio-sub000/internal/domain"
	"github.com/ujen5173/Ridezio-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ReservationService coordinates booking attempts: it runs the cheap input
// checks, quotes the total, and delegates the authoritative availability
// re-check to the repository's transactional insert. Draft-time availability
// reads go through GetAvailability and are advisory only.
type ReservationService struct {
	reservationRepo ports.ReservationRepo
	vehicleRepo     ports.VehicleRepo
	userRepo        ports.UserRepo
	cache           ports.AvailabilityCache
	notifier        ports.ReservationNotifier
	pendingTTL      time.Duration
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	vehicleRepo ports.VehicleRepo,
	userRepo ports.UserRepo,
	cache ports.AvailabilityCache,
	notifier ports.ReservationNotifier,
	pendingTTL time.Duration,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		userRepo:        userRepo,
		cache:           cache,
		notifier:        notifier,
		pendingTTL:      pendingTTL,
		logger:          logger,
	}
}

// Request handles a booking submission. Checks run in order, each
// short-circuiting: date range, requester/vehicle existence, quantity bounds,
// then the transactional availability re-check inside reservationRepo.Create.
// An earlier draft-time availability read is deliberately not trusted here.
func (s *ReservationService) Request(ctx context.Context, input domain.RequestReservationInput) (*domain.Reservation, error) {
	rng, err := domain.NewDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if rng.Start.Before(domain.Today()) {
		return nil, fmt.Errorf("%w: start date is in the past", domain.ErrInvalidDateRange)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("check vehicle: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if input.Quantity < 1 || input.Quantity > vehicle.Inventory {
		return nil, domain.ErrQuantityExceedsInventory
	}

	now := time.Now().UTC()
	res := &domain.Reservation{
		ID:         uuid.New().String(),
		VehicleID:  input.VehicleID,
		UserID:     input.UserID,
		Quantity:   input.Quantity,
		StartDate:  rng.Start,
		EndDate:    rng.End,
		Status:     domain.ReservationStatusPending,
		TotalPrice: float64(rng.Days()*input.Quantity) * vehicle.PricePerDay,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.reservationRepo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.invalidateAvailability(ctx, input.VehicleID)

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("vehicle_id", res.VehicleID),
		logger.String("user_id", res.UserID),
		logger.Int("quantity", res.Quantity),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), user, vehicle, res)

	return res, nil
}

// GetAvailability answers the read-only availability query: remaining quantity
// per day plus the range minimum. Days before today are reported as zero
// regardless of inventory; the past is not rentable. Results are cached
// best-effort, any cache failure falls through to the ledger.
func (s *ReservationService) GetAvailability(ctx context.Context, vehicleID string, start, end time.Time) (*domain.VehicleAvailability, error) {
	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	if cached, cacheErr := s.cache.Get(ctx, vehicleID, rng); cacheErr != nil {
		s.logger.Warn("availability cache read failed",
			logger.String("vehicle_id", vehicleID),
			logger.String("error", cacheErr.Error()),
		)
	} else if cached != nil {
		return cached, nil
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("check vehicle: %w", err)
	}

	reservations, err := s.reservationRepo.ListActiveInRange(ctx, vehicleID, rng)
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}

	perDay := availability.PerDay(vehicle.Inventory, reservations, rng)
	today := domain.Today()
	min := vehicle.Inventory
	for _, day := range rng.EachDay() {
		key := day.Format(domain.DayFormat)
		if day.Before(today) {
			perDay[key] = 0
		}
		if perDay[key] < min {
			min = perDay[key]
		}
	}

	av := &domain.VehicleAvailability{
		VehicleID:    vehicleID,
		Start:        rng.Start,
		End:          rng.End,
		PerDay:       perDay,
		MinAvailable: min,
	}

	if cacheErr := s.cache.Set(ctx, av); cacheErr != nil {
		s.logger.Warn("availability cache write failed",
			logger.String("vehicle_id", vehicleID),
			logger.String("error", cacheErr.Error()),
		)
	}

	return av, nil
}

// Approve is the vendor accepting a pending reservation. The inventory claim
// does not change (pending already counts), so no availability re-check and no
// cache invalidation.
func (s *ReservationService) Approve(ctx context.Context, id string) error {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	if err = s.reservationRepo.UpdateStatus(
		ctx, id,
		[]domain.ReservationStatus{domain.ReservationStatusPending},
		domain.ReservationStatusApproved,
	); err != nil {
		return fmt.Errorf("approve reservation: %w", err)
	}

	s.logger.Info("reservation approved",
		logger.String("reservation_id", id),
		logger.String("vehicle_id", res.VehicleID),
	)

	s.notifyAsync(ctx, res, s.notifier.NotifyReservationApproved)

	return nil
}

// Reject is the vendor declining a pending reservation, which releases its
// inventory claim.
func (s *ReservationService) Reject(ctx context.Context, id string) error {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	if err = s.reservationRepo.UpdateStatus(
		ctx, id,
		[]domain.ReservationStatus{domain.ReservationStatusPending},
		domain.ReservationStatusRejected,
	); err != nil {
		return fmt.Errorf("reject reservation: %w", err)
	}

	s.invalidateAvailability(ctx, res.VehicleID)

	s.logger.Info("reservation rejected",
		logger.String("reservation_id", id),
		logger.String("vehicle_id", res.VehicleID),
	)

	s.notifyAsync(ctx, res, s.notifier.NotifyReservationRejected)

	return nil
}

// Cancel is the requester withdrawing an active reservation. A mismatched
// requester gets a not-found, existence is not leaked.
func (s *ReservationService) Cancel(ctx context.Context, id, userID string) error {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}
	if res.UserID != userID {
		return domain.ErrReservationNotFound
	}

	if err = s.reservationRepo.UpdateStatus(
		ctx, id, domain.ActiveStatuses, domain.ReservationStatusCancelled,
	); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	s.invalidateAvailability(ctx, res.VehicleID)

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", id),
		logger.String("vehicle_id", res.VehicleID),
	)

	s.notifyAsync(ctx, res, s.notifier.NotifyReservationCancelled)

	return nil
}

// CancelExpired cancels pending reservations older than the vendor-response
// window. A zero window means pendings never expire.
func (s *ReservationService) CancelExpired(ctx context.Context) ([]*domain.Reservation, error) {
	if s.pendingTTL <= 0 {
		return nil, nil
	}

	cancelled, err := s.reservationRepo.CancelExpiredPending(ctx, s.pendingTTL)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) > 0 {
		seen := make(map[string]struct{}, len(cancelled))
		for _, res := range cancelled {
			if _, ok := seen[res.VehicleID]; ok {
				continue
			}
			seen[res.VehicleID] = struct{}{}
			s.invalidateAvailability(ctx, res.VehicleID)
		}

		s.logger.Info("expired reservations cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByUser(ctx, userID)
}

func (s *ReservationService) invalidateAvailability(ctx context.Context, vehicleID string) {
	if err := s.cache.Invalidate(ctx, vehicleID); err != nil {
		s.logger.Warn("availability cache invalidation failed",
			logger.String("vehicle_id", vehicleID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) notifyAsync(
	ctx context.Context,
	res *domain.Reservation,
	notify func(ctx context.Context, user *domain.User, vehicle *domain.Vehicle, res *domain.Reservation),
) {
	user, err := s.userRepo.GetByID(ctx, res.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", res.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, res.VehicleID)
	if err != nil {
		s.logger.Error("failed to get vehicle for notification",
			logger.String("vehicle_id", res.VehicleID),
			logger.String("error", err.Error()),
		)
		return
	}

	go notify(context.WithoutCancel(ctx), user, vehicle, res)
}

func (s *ReservationService) notifyCancelled(ctx context.Context, reservations []*domain.Reservation) {
	for _, res := range reservations {
		user, err := s.userRepo.GetByID(ctx, res.UserID)
		if err != nil {
			s.logger.Error("failed to get user for cancel notification",
				logger.String("user_id", res.UserID),
			)
			continue
		}

		vehicle, err := s.vehicleRepo.GetByID(ctx, res.VehicleID)
		if err != nil {
			s.logger.Error("failed to get vehicle for cancel notification",
				logger.String("vehicle_id", res.VehicleID),
			)
			continue
		}

		s.notifier.NotifyReservationCancelled(ctx, user, vehicle, res)
	}
}
