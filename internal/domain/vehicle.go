package domain

import "time"

type Vehicle struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Inventory   int       `json:"inventory"`
	PricePerDay float64   `json:"price_per_day"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VehicleDetails struct {
	Vehicle      Vehicle       `json:"vehicle"`
	Reservations []Reservation `json:"reservations"`
}

type CreateVehicleInput struct {
	Name        string
	Brand       string
	Inventory   int
	PricePerDay float64
}
