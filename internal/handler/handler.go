package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ujen5173/Ridezio-sub000/internal/domain"
	"github.com/ujen5173/Ridezio-sub000/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type VehicleSvc interface {
	Create(ctx context.Context, input domain.CreateVehicleInput) (*domain.Vehicle, error)
	GetDetails(ctx context.Context, id string) (*domain.VehicleDetails, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
}

type ReservationSvc interface {
	Request(ctx context.Context, input domain.RequestReservationInput) (*domain.Reservation, error)
	GetAvailability(ctx context.Context, vehicleID string, start, end time.Time) (*domain.VehicleAvailability, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Cancel(ctx context.Context, id, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	vehicleService     VehicleSvc
	reservationService ReservationSvc
	userService        UserSvc
}

func NewHandler(vehicleService VehicleSvc, reservationService ReservationSvc, userService UserSvc) *Handler {
	return &Handler{
		vehicleService:     vehicleService,
		reservationService: reservationService,
		userService:        userService,
	}
}

// Vehicles

func (h *Handler) CreateVehicle(c *ginext.Context) {
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateVehicleInput{
		Name:        req.Name,
		Brand:       req.Brand,
		Inventory:   req.Inventory,
		PricePerDay: req.PricePerDay,
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

func (h *Handler) GetVehicle(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vehicle id"})
		return
	}

	details, err := h.vehicleService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleDetailsResponse(details))
}

func (h *Handler) ListVehicles(c *ginext.Context) {
	vehicles, err := h.vehicleService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, dto.ToVehicleResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

// GetAvailability serves the date-picker query: remaining quantity for every
// day of ?from=YYYY-MM-DD&to=YYYY-MM-DD plus the range minimum.
func (h *Handler) GetAvailability(c *ginext.Context) {
	vehicleID := c.Param("id")
	if _, err := uuid.Parse(vehicleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vehicle id"})
		return
	}

	from, err := time.Parse(domain.DayFormat, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(domain.DayFormat, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid to date, expected YYYY-MM-DD"})
		return
	}

	av, err := h.reservationService.GetAvailability(c.Request.Context(), vehicleID, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(av))
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	vehicleID := c.Param("id")
	if _, err := uuid.Parse(vehicleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid vehicle id"})
		return
	}

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(domain.DayFormat, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(domain.DayFormat, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date, expected YYYY-MM-DD"})
		return
	}

	input := domain.RequestReservationInput{
		VehicleID: vehicleID,
		UserID:    req.UserID,
		Quantity:  req.Quantity,
		StartDate: start,
		EndDate:   end,
	}

	res, err := h.reservationService.Request(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) ApproveReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Approve(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "approved"})
}

func (h *Handler) RejectReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Reject(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "rejected"})
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) GetUserReservations(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	reservations, err := h.reservationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var availErr *domain.InsufficientAvailabilityError
	if errors.As(err, &availErr) {
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:     err.Error(),
			Available: &availErr.Available,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientAvailability),
		errors.Is(err, domain.ErrReservationNotPending),
		errors.Is(err, domain.ErrReservationNotActive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrQuantityExceedsInventory),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
