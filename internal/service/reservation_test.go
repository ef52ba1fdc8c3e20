package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ujen5173/Ridezio-sub000/internal/domain"
	"github.com/ujen5173/Ridezio-sub000/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type reservationMocks struct {
	reservationRepo *mocks.MockReservationRepo
	vehicleRepo     *mocks.MockVehicleRepo
	userRepo        *mocks.MockUserRepo
	cache           *mocks.MockAvailabilityCache
	notifier        *mocks.MockReservationNotifier
}

func newReservationService(t *testing.T, pendingTTL time.Duration) (*ReservationService, reservationMocks) {
	t.Helper()
	m := reservationMocks{
		reservationRepo: mocks.NewMockReservationRepo(t),
		vehicleRepo:     mocks.NewMockVehicleRepo(t),
		userRepo:        mocks.NewMockUserRepo(t),
		cache:           mocks.NewMockAvailabilityCache(t),
		notifier:        mocks.NewMockReservationNotifier(t),
	}
	svc := NewReservationService(
		m.reservationRepo, m.vehicleRepo, m.userRepo,
		m.cache, m.notifier,
		pendingTTL, newTestLogger(t),
	)
	return svc, m
}

func TestReservationService_Request_Success(t *testing.T) {
	svc, m := newReservationService(t, 0)

	vehicle := &domain.Vehicle{ID: "v1", Name: "Pulsar", Inventory: 3, PricePerDay: 10}
	user := &domain.User{ID: "u1", Username: "alice"}
	start := domain.Today().AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 2)

	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "v1").Return(nil)
	m.notifier.EXPECT().NotifyReservationCreated(mock.Anything, user, vehicle, mock.Anything).Return()

	res, err := svc.Request(context.Background(), domain.RequestReservationInput{
		VehicleID: "v1",
		UserID:    "u1",
		Quantity:  2,
		StartDate: start,
		EndDate:   end,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, res.Status)
	assert.Equal(t, 2, res.Quantity)
	assert.Equal(t, start, res.StartDate)
	assert.Equal(t, end, res.EndDate)
	// 3 days × 2 units × 10 per day
	assert.Equal(t, 60.0, res.TotalPrice)
	assert.NotEmpty(t, res.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Request_InvertedRange(t *testing.T) {
	svc, _ := newReservationService(t, 0)

	start := domain.Today().AddDate(0, 0, 5)

	_, err := svc.Request(context.Background(), domain.RequestReservationInput{
		VehicleID: "v1",
		UserID:    "u1",
		Quantity:  1,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, -2),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestReservationService_Request_PastStartDate(t *testing.T) {
	svc, _ := newReservationService(t, 0)

	yesterday := domain.Today().AddDate(0, 0, -1)

	_, err := svc.Request(context.Background(), domain.RequestReservationInput{
		VehicleID: "v1",
		UserID:    "u1",
		Quantity:  1,
		StartDate: yesterday,
		EndDate:   yesterday.AddDate(0, 0, 3),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestReservationService_Request_VehicleNotFound(t *testing.T) {
	svc, m := newReservationService(t, 0)

	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVehicleNotFound)

	_, err := svc.Request(context.Background(), domain.RequestReservationInput{
		VehicleID: "missing",
		UserID:    "u1",
		Quantity:  1,
		StartDate: domain.Today(),
		EndDate:   domain.Today(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

func TestReservationService_Request_QuantityBounds(t *testing.T) {
	vehicle := &domain.Vehicle{ID: "v1", Inventory: 2, PricePerDay: 10}
	user := &domain.User{ID: "u1"}

	for _, quantity := range []int{0, -1, 3} {
		svc, m := newReservationService(t, 0)
		m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)
		m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

		_, err := svc.Request(context.Background(), domain.RequestReservationInput{
			VehicleID: "v1",
			UserID:    "u1",
			Quantity:  quantity,
			StartDate: domain.Today(),
			EndDate:   domain.Today().AddDate(0, 0, 1),
		})

		require.Error(t, err, "quantity %d must be rejected", quantity)
		assert.ErrorIs(t, err, domain.ErrQuantityExceedsInventory)
	}
}

func TestReservationService_Request_InsufficientAvailability(t *testing.T) {
	svc, m := newReservationService(t, 0)

	vehicle := &domain.Vehicle{ID: "v1", Inventory: 2, PricePerDay: 10}
	user := &domain.User{ID: "u1"}

	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&domain.InsufficientAvailabilityError{Available: 1})

	_, err := svc.Request(context.Background(), domain.RequestReservationInput{
		VehicleID: "v1",
		UserID:    "u1",
		Quantity:  2,
		StartDate: domain.Today(),
		EndDate:   domain.Today().AddDate(0, 0, 1),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientAvailability)

	var availErr *domain.InsufficientAvailabilityError
	require.ErrorAs(t, err, &availErr)
	assert.Equal(t, 1, availErr.Available)
}

func TestReservationService_GetAvailability_CacheHit(t *testing.T) {
	svc, m := newReservationService(t, 0)

	start := domain.Today().AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 2)
	cached := &domain.VehicleAvailability{
		VehicleID:    "v1",
		Start:        start,
		End:          end,
		PerDay:       map[string]int{start.Format(domain.DayFormat): 2},
		MinAvailable: 2,
	}

	m.cache.EXPECT().Get(mock.Anything, "v1", mock.Anything).Return(cached, nil)

	av, err := svc.GetAvailability(context.Background(), "v1", start, end)

	require.NoError(t, err)
	assert.Equal(t, cached, av)
	// vehicleRepo and reservationRepo must not be touched on a hit
}

func TestReservationService_GetAvailability_ComputesAndCaches(t *testing.T) {
	svc, m := newReservationService(t, 0)

	vehicle := &domain.Vehicle{ID: "v1", Inventory: 3}
	start := domain.Today().AddDate(0, 0, 1)
	end := start.AddDate(0, 0, 2)
	existing := []*domain.Reservation{
		{
			ID: "r1", VehicleID: "v1", Quantity: 2,
			StartDate: start, EndDate: start,
			Status: domain.ReservationStatusPending,
		},
	}

	m.cache.EXPECT().Get(mock.Anything, "v1", mock.Anything).Return(nil, nil)
	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)
	m.reservationRepo.EXPECT().ListActiveInRange(mock.Anything, "v1", mock.Anything).Return(existing, nil)
	m.cache.EXPECT().Set(mock.Anything, mock.Anything).Return(nil)

	av, err := svc.GetAvailability(context.Background(), "v1", start, end)

	require.NoError(t, err)
	assert.Equal(t, 1, av.MinAvailable)
	assert.Equal(t, 1, av.PerDay[start.Format(domain.DayFormat)])
	assert.Equal(t, 3, av.PerDay[end.Format(domain.DayFormat)])
	assert.Len(t, av.PerDay, 3)
}

func TestReservationService_GetAvailability_PastDaysAreZero(t *testing.T) {
	svc, m := newReservationService(t, 0)

	vehicle := &domain.Vehicle{ID: "v1", Inventory: 2}
	start := domain.Today().AddDate(0, 0, -1)
	end := domain.Today().AddDate(0, 0, 1)

	m.cache.EXPECT().Get(mock.Anything, "v1", mock.Anything).Return(nil, nil)
	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)
	m.reservationRepo.EXPECT().ListActiveInRange(mock.Anything, "v1", mock.Anything).Return(nil, nil)
	m.cache.EXPECT().Set(mock.Anything, mock.Anything).Return(nil)

	av, err := svc.GetAvailability(context.Background(), "v1", start, end)

	require.NoError(t, err)
	assert.Equal(t, 0, av.PerDay[start.Format(domain.DayFormat)])
	assert.Equal(t, 2, av.PerDay[end.Format(domain.DayFormat)])
	assert.Equal(t, 0, av.MinAvailable)
}

func TestReservationService_GetAvailability_CacheFailureFallsThrough(t *testing.T) {
	svc, m := newReservationService(t, 0)

	vehicle := &domain.Vehicle{ID: "v1", Inventory: 2}
	start := domain.Today().AddDate(0, 0, 1)

	m.cache.EXPECT().Get(mock.Anything, "v1", mock.Anything).Return(nil, errors.New("redis down"))
	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)
	m.reservationRepo.EXPECT().ListActiveInRange(mock.Anything, "v1", mock.Anything).Return(nil, nil)
	m.cache.EXPECT().Set(mock.Anything, mock.Anything).Return(errors.New("redis down"))

	av, err := svc.GetAvailability(context.Background(), "v1", start, start)

	require.NoError(t, err)
	assert.Equal(t, 2, av.MinAvailable)
}

func TestReservationService_Approve_Success(t *testing.T) {
	svc, m := newReservationService(t, 0)

	res := &domain.Reservation{ID: "r1", VehicleID: "v1", UserID: "u1", Status: domain.ReservationStatusPending}
	user := &domain.User{ID: "u1"}
	vehicle := &domain.Vehicle{ID: "v1"}

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	m.reservationRepo.EXPECT().UpdateStatus(
		mock.Anything, "r1",
		[]domain.ReservationStatus{domain.ReservationStatusPending},
		domain.ReservationStatusApproved,
	).Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)
	m.notifier.EXPECT().NotifyReservationApproved(mock.Anything, user, vehicle, res).Return()

	err := svc.Approve(context.Background(), "r1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Approve_NotPending(t *testing.T) {
	svc, m := newReservationService(t, 0)

	res := &domain.Reservation{ID: "r1", VehicleID: "v1", UserID: "u1", Status: domain.ReservationStatusApproved}

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	m.reservationRepo.EXPECT().UpdateStatus(mock.Anything, "r1", mock.Anything, mock.Anything).
		Return(domain.ErrReservationNotPending)

	err := svc.Approve(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotPending)
}

func TestReservationService_Reject_ReleasesAvailability(t *testing.T) {
	svc, m := newReservationService(t, 0)

	res := &domain.Reservation{ID: "r1", VehicleID: "v1", UserID: "u1", Status: domain.ReservationStatusPending}
	user := &domain.User{ID: "u1"}
	vehicle := &domain.Vehicle{ID: "v1"}

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	m.reservationRepo.EXPECT().UpdateStatus(
		mock.Anything, "r1",
		[]domain.ReservationStatus{domain.ReservationStatusPending},
		domain.ReservationStatusRejected,
	).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "v1").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)
	m.notifier.EXPECT().NotifyReservationRejected(mock.Anything, user, vehicle, res).Return()

	err := svc.Reject(context.Background(), "r1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_WrongRequester(t *testing.T) {
	svc, m := newReservationService(t, 0)

	res := &domain.Reservation{ID: "r1", VehicleID: "v1", UserID: "u1", Status: domain.ReservationStatusPending}

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)

	err := svc.Cancel(context.Background(), "r1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, m := newReservationService(t, 0)

	res := &domain.Reservation{ID: "r1", VehicleID: "v1", UserID: "u1", Status: domain.ReservationStatusApproved}
	user := &domain.User{ID: "u1"}
	vehicle := &domain.Vehicle{ID: "v1"}

	m.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)
	m.reservationRepo.EXPECT().UpdateStatus(
		mock.Anything, "r1",
		domain.ActiveStatuses,
		domain.ReservationStatusCancelled,
	).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "v1").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)
	m.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, user, vehicle, res).Return()

	err := svc.Cancel(context.Background(), "r1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_CancelExpired_DisabledWindow(t *testing.T) {
	svc, _ := newReservationService(t, 0)

	cancelled, err := svc.CancelExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cancelled)
}

func TestReservationService_CancelExpired_Success(t *testing.T) {
	svc, m := newReservationService(t, 30*time.Minute)

	expired := []*domain.Reservation{
		{ID: "r1", VehicleID: "v1", UserID: "u1"},
		{ID: "r2", VehicleID: "v1", UserID: "u2"},
	}
	user1 := &domain.User{ID: "u1"}
	user2 := &domain.User{ID: "u2"}
	vehicle := &domain.Vehicle{ID: "v1"}

	m.reservationRepo.EXPECT().CancelExpiredPending(mock.Anything, 30*time.Minute).Return(expired, nil)
	// both reservations share a vehicle, invalidated once
	m.cache.EXPECT().Invalidate(mock.Anything, "v1").Return(nil).Once()
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user1, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(user2, nil)
	m.vehicleRepo.EXPECT().GetByID(mock.Anything, "v1").Return(vehicle, nil)
	m.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, user1, vehicle, expired[0]).Return()
	m.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, user2, vehicle, expired[1]).Return()

	cancelled, err := svc.CancelExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, cancelled, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestReservationService_ListByUser(t *testing.T) {
	svc, m := newReservationService(t, 0)

	reservations := []*domain.Reservation{
		{ID: "r1", VehicleID: "v1", UserID: "u1", Status: domain.ReservationStatusPending},
	}
	m.reservationRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(reservations, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
