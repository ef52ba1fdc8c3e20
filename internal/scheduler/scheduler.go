package scheduler

import (
	"context"
	"time"

	"github.com/ujen5173/Ridezio-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationCanceller interface {
	CancelExpired(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically cancels pending reservations the vendor never
// responded to, releasing their inventory claim.
type Scheduler struct {
	reservationService reservationCanceller
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService reservationCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.reservationService.CancelExpired(ctx)
	if err != nil {
		s.logger.Error("failed to cancel expired reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range cancelled {
		s.logger.Info("reservation expired",
			logger.String("reservation_id", r.ID),
			logger.String("vehicle_id", r.VehicleID),
			logger.String("user_id", r.UserID),
		)
	}
}
