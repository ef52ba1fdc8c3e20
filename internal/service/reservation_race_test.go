package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ujen5173/Ridezio-sub000/internal/availability"
	"github.com/ujen5173/Ridezio-sub000/internal/domain"
	"github.com/ujen5173/Ridezio-sub000/internal/service/ports/mocks"
)

// memoryLedger replays the repository's commit protocol in memory: take the
// per-vehicle lock, recompute free units from the stored active reservations,
// insert only if the request still fits. Postgres does the same with
// SELECT ... FOR UPDATE.
type memoryLedger struct {
	mu           sync.Mutex
	inventory    int
	reservations []*domain.Reservation
}

func (l *memoryLedger) Create(_ context.Context, res *domain.Reservation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	free := availability.ForRange(l.inventory, l.reservations, res.Range())
	if res.Quantity > free {
		return &domain.InsufficientAvailabilityError{Available: free}
	}
	l.reservations = append(l.reservations, res)
	return nil
}

func (l *memoryLedger) GetByID(context.Context, string) (*domain.Reservation, error) {
	return nil, domain.ErrReservationNotFound
}

func (l *memoryLedger) UpdateStatus(context.Context, string, []domain.ReservationStatus, domain.ReservationStatus) error {
	return domain.ErrReservationNotFound
}

func (l *memoryLedger) ListActiveByVehicle(context.Context, string) ([]*domain.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*domain.Reservation(nil), l.reservations...), nil
}

func (l *memoryLedger) ListActiveInRange(_ context.Context, _ string, _ domain.DateRange) ([]*domain.Reservation, error) {
	return l.ListActiveByVehicle(nil, "")
}

func (l *memoryLedger) ListByUser(context.Context, string) ([]*domain.Reservation, error) {
	return nil, nil
}

func (l *memoryLedger) CancelExpiredPending(context.Context, time.Duration) ([]*domain.Reservation, error) {
	return nil, nil
}

func newRaceService(t *testing.T, ledger *memoryLedger, vehicle *domain.Vehicle) *ReservationService {
	t.Helper()

	vehicleRepo := mocks.NewMockVehicleRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	cache := mocks.NewMockAvailabilityCache(t)
	notifier := mocks.NewMockReservationNotifier(t)

	vehicleRepo.EXPECT().GetByID(mock.Anything, vehicle.ID).Return(vehicle, nil)
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{ID: "u1"}, nil)
	cache.EXPECT().Invalidate(mock.Anything, vehicle.ID).Return(nil)
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	return NewReservationService(ledger, vehicleRepo, userRepo, cache, notifier, 0, newTestLogger(t))
}

func TestReservationService_Request_NoOversellUnderContention(t *testing.T) {
	vehicle := &domain.Vehicle{ID: "v1", Name: "Pulsar", Inventory: 3, PricePerDay: 10}
	ledger := &memoryLedger{inventory: vehicle.Inventory}
	svc := newRaceService(t, ledger, vehicle)

	start := domain.Today().AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 4)

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Request(context.Background(), domain.RequestReservationInput{
				VehicleID: "v1",
				UserID:    "u1",
				Quantity:  1,
				StartDate: start,
				EndDate:   end,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientAvailability):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, vehicle.Inventory, succeeded)
	assert.Equal(t, attempts-vehicle.Inventory, rejected)

	// the ledger itself must never go over inventory on any day
	rng, err := domain.NewDateRange(start, end)
	require.NoError(t, err)
	for _, remaining := range availability.PerDay(vehicle.Inventory, ledger.reservations, rng) {
		assert.GreaterOrEqual(t, remaining, 0)
	}

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestReservationService_Request_LastUnitRace(t *testing.T) {
	vehicle := &domain.Vehicle{ID: "v1", Name: "Pulsar", Inventory: 1, PricePerDay: 10}
	ledger := &memoryLedger{inventory: vehicle.Inventory}
	svc := newRaceService(t, ledger, vehicle)

	day := domain.Today().AddDate(0, 0, 2)

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Request(context.Background(), domain.RequestReservationInput{
				VehicleID: "v1",
				UserID:    "u1",
				Quantity:  1,
				StartDate: day,
				EndDate:   day,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		var availErr *domain.InsufficientAvailabilityError
		require.ErrorAs(t, err, &availErr)
		assert.Equal(t, 0, availErr.Available)
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, ledger.reservations, 1)

	time.Sleep(100 * time.Millisecond)
}

func TestReservationService_Request_DisjointRangesDoNotContend(t *testing.T) {
	vehicle := &domain.Vehicle{ID: "v1", Name: "Pulsar", Inventory: 1, PricePerDay: 10}
	ledger := &memoryLedger{inventory: vehicle.Inventory}
	svc := newRaceService(t, ledger, vehicle)

	const attempts = 6
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	// each goroutine books its own day, every attempt must succeed
	for i := 0; i < attempts; i++ {
		day := domain.Today().AddDate(0, 0, 1+i)
		wg.Add(1)
		go func(day time.Time) {
			defer wg.Done()
			_, err := svc.Request(context.Background(), domain.RequestReservationInput{
				VehicleID: "v1",
				UserID:    "u1",
				Quantity:  1,
				StartDate: day,
				EndDate:   day,
			})
			results <- err
		}(day)
	}
	wg.Wait()
	close(results)

	for err := range results {
		require.NoError(t, err)
	}
	assert.Len(t, ledger.reservations, attempts)

	time.Sleep(100 * time.Millisecond)
}
