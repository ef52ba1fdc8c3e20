package dto

import (
	"time"

	"github.com/ujen5173/Ridezio-sub000/internal/domain"
)

type VehicleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Inventory   int     `json:"inventory"`
	PricePerDay float64 `json:"price_per_day"`
	CreatedAt   string  `json:"created_at"`
}

type VehicleDetailsResponse struct {
	Vehicle      VehicleResponse       `json:"vehicle"`
	Reservations []ReservationResponse `json:"reservations"`
}

type ReservationResponse struct {
	ID         string  `json:"id"`
	VehicleID  string  `json:"vehicle_id"`
	UserID     string  `json:"user_id"`
	Quantity   int     `json:"quantity"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	CreatedAt  string  `json:"created_at"`
}

type AvailabilityResponse struct {
	VehicleID    string         `json:"vehicle_id"`
	From         string         `json:"from"`
	To           string         `json:"to"`
	PerDay       map[string]int `json:"per_day_available"`
	MinAvailable int            `json:"min_available"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Available *int   `json:"available,omitempty"`
}

func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          v.ID,
		Name:        v.Name,
		Brand:       v.Brand,
		Inventory:   v.Inventory,
		PricePerDay: v.PricePerDay,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
}

func ToVehicleDetailsResponse(d *domain.VehicleDetails) VehicleDetailsResponse {
	reservations := make([]ReservationResponse, 0, len(d.Reservations))
	for _, r := range d.Reservations {
		reservations = append(reservations, ToReservationResponse(&r))
	}

	return VehicleDetailsResponse{
		Vehicle:      ToVehicleResponse(&d.Vehicle),
		Reservations: reservations,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		VehicleID:  r.VehicleID,
		UserID:     r.UserID,
		Quantity:   r.Quantity,
		StartDate:  r.StartDate.Format(domain.DayFormat),
		EndDate:    r.EndDate.Format(domain.DayFormat),
		Status:     string(r.Status),
		TotalPrice: r.TotalPrice,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(av *domain.VehicleAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		VehicleID:    av.VehicleID,
		From:         av.Start.Format(domain.DayFormat),
		To:           av.End.Format(domain.DayFormat),
		PerDay:       av.PerDay,
		MinAvailable: av.MinAvailable,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
