package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ujen5173/Ridezio-sub000/internal/domain"
	"github.com/ujen5173/Ridezio-sub000/internal/handler/dto"
	hmocks "github.com/ujen5173/Ridezio-sub000/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockVehicleSvc, *hmocks.MockReservationSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	vehicleSvc := hmocks.NewMockVehicleSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(vehicleSvc, reservationSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/vehicles", h.CreateVehicle)
		api.GET("/vehicles", h.ListVehicles)
		api.GET("/vehicles/:id", h.GetVehicle)
		api.GET("/vehicles/:id/availability", h.GetAvailability)
		api.POST("/vehicles/:id/reservations", h.CreateReservation)
		api.POST("/reservations/:id/approve", h.ApproveReservation)
		api.POST("/reservations/:id/reject", h.RejectReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/reservations", h.GetUserReservations)
	}

	return vehicleSvc, reservationSvc, userSvc, r
}

// --- Vehicles ---

func TestHandler_CreateVehicle_Success(t *testing.T) {
	vehicleSvc, _, _, r := setupRouter(t)

	vehicle := &domain.Vehicle{
		ID:          uuid.New().String(),
		Name:        "Pulsar 220",
		Brand:       "Bajaj",
		Inventory:   5,
		PricePerDay: 25,
		CreatedAt:   time.Now(),
	}

	vehicleSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(vehicle, nil)

	body, _ := json.Marshal(dto.CreateVehicleRequest{
		Name:        "Pulsar 220",
		Brand:       "Bajaj",
		Inventory:   5,
		PricePerDay: 25,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/vehicles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pulsar 220", resp.Name)
	assert.Equal(t, 5, resp.Inventory)
}

func TestHandler_CreateVehicle_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/vehicles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetVehicle_Success(t *testing.T) {
	vehicleSvc, _, _, r := setupRouter(t)

	vehicleID := uuid.New().String()
	details := &domain.VehicleDetails{
		Vehicle:      domain.Vehicle{ID: vehicleID, Name: "Pulsar", Inventory: 3, CreatedAt: time.Now()},
		Reservations: []domain.Reservation{},
	}

	vehicleSvc.EXPECT().GetDetails(mock.Anything, vehicleID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/"+vehicleID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.VehicleDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, vehicleID, resp.Vehicle.ID)
}

func TestHandler_GetVehicle_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetVehicle_NotFound(t *testing.T) {
	vehicleSvc, _, _, r := setupRouter(t)

	vehicleID := uuid.New().String()
	vehicleSvc.EXPECT().GetDetails(mock.Anything, vehicleID).Return(nil, domain.ErrVehicleNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/"+vehicleID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListVehicles_Success(t *testing.T) {
	vehicleSvc, _, _, r := setupRouter(t)

	vehicles := []*domain.Vehicle{
		{ID: "v1", Name: "Pulsar", CreatedAt: time.Now()},
		{ID: "v2", Name: "Activa", CreatedAt: time.Now()},
	}
	vehicleSvc.EXPECT().List(mock.Anything).Return(vehicles, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Availability ---

func TestHandler_GetAvailability_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	vehicleID := uuid.New().String()
	av := &domain.VehicleAvailability{
		VehicleID: vehicleID,
		Start:     mustDay(t, "2026-09-01"),
		End:       mustDay(t, "2026-09-03"),
		PerDay: map[string]int{
			"2026-09-01": 2,
			"2026-09-02": 1,
			"2026-09-03": 2,
		},
		MinAvailable: 1,
	}

	reservationSvc.EXPECT().
		GetAvailability(mock.Anything, vehicleID, mustDay(t, "2026-09-01"), mustDay(t, "2026-09-03")).
		Return(av, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/"+vehicleID+"/availability?from=2026-09-01&to=2026-09-03", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.MinAvailable)
	assert.Equal(t, 1, resp.PerDay["2026-09-02"])
}

func TestHandler_GetAvailability_MissingDates(t *testing.T) {
	_, _, _, r := setupRouter(t)

	vehicleID := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/"+vehicleID+"/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAvailability_InvertedRange(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	vehicleID := uuid.New().String()
	reservationSvc.EXPECT().
		GetAvailability(mock.Anything, vehicleID, mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidDateRange)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/"+vehicleID+"/availability?from=2026-09-03&to=2026-09-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	vehicleID := uuid.New().String()
	userID := uuid.New().String()
	res := &domain.Reservation{
		ID:         uuid.New().String(),
		VehicleID:  vehicleID,
		UserID:     userID,
		Quantity:   2,
		StartDate:  mustDay(t, "2026-09-01"),
		EndDate:    mustDay(t, "2026-09-03"),
		Status:     domain.ReservationStatusPending,
		TotalPrice: 120,
		CreatedAt:  time.Now(),
	}

	reservationSvc.EXPECT().Request(mock.Anything, mock.Anything).Return(res, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:    userID,
		Quantity:  2,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/"+vehicleID+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 120.0, resp.TotalPrice)
}

func TestHandler_CreateReservation_InvalidVehicleID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `","quantity":1,"start_date":"2026-09-01","end_date":"2026-09-02"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/bad-id/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	vehicleID := uuid.New().String()
	body := []byte(`{"user_id":"` + uuid.New().String() + `","quantity":1,"start_date":"not-a-date","end_date":"2026-09-02"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/"+vehicleID+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_InsufficientAvailability(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	vehicleID := uuid.New().String()
	userID := uuid.New().String()

	reservationSvc.EXPECT().Request(mock.Anything, mock.Anything).
		Return(nil, &domain.InsufficientAvailabilityError{Available: 1})

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:    userID,
		Quantity:  3,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/"+vehicleID+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	// rejection carries how many units are still free
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Available)
	assert.Equal(t, 1, *resp.Available)
}

func TestHandler_CreateReservation_QuantityExceedsInventory(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	vehicleID := uuid.New().String()

	reservationSvc.EXPECT().Request(mock.Anything, mock.Anything).
		Return(nil, domain.ErrQuantityExceedsInventory)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		UserID:    uuid.New().String(),
		Quantity:  100,
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/"+vehicleID+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveReservation_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().Approve(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ApproveReservation_NotPending(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().Approve(mock.Anything, id).Return(domain.ErrReservationNotPending)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RejectReservation_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	reservationSvc.EXPECT().Reject(mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/reject", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	userID := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, id, userID).Return(nil)

	body, _ := json.Marshal(dto.CancelReservationRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_WrongUser(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	userID := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, id, userID).Return(domain.ErrReservationNotFound)

	body, _ := json.Marshal(dto.CancelReservationRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelReservation_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/bad-id/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  "alice",
		CreatedAt: time.Now(),
	}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "taken"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	users := []*domain.User{
		{ID: "u1", Username: "alice", CreatedAt: time.Now()},
	}
	userSvc.EXPECT().List(mock.Anything).Return(users, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserReservations_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	userID := uuid.New().String()
	reservations := []*domain.Reservation{
		{
			ID: "r1", VehicleID: "v1", UserID: userID,
			Quantity: 1, Status: domain.ReservationStatusPending,
			StartDate: mustDay(t, "2026-09-01"), EndDate: mustDay(t, "2026-09-02"),
			CreatedAt: time.Now(),
		},
	}

	reservationSvc.EXPECT().ListByUser(mock.Anything, userID).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserReservations_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/bad-id/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	vehicleSvc, _, _, r := setupRouter(t)

	vehicleID := uuid.New().String()
	vehicleSvc.EXPECT().GetDetails(mock.Anything, vehicleID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/"+vehicleID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := time.Parse(domain.DayFormat, s)
	require.NoError(t, err)
	return day
}
