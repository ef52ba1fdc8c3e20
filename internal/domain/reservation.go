package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusApproved  ReservationStatus = "approved"
	ReservationStatusRejected  ReservationStatus = "rejected"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// ActiveStatuses are the statuses that still hold inventory: a pending
// reservation keeps its claim until the vendor responds or it expires.
var ActiveStatuses = []ReservationStatus{ReservationStatusPending, ReservationStatusApproved}

func (s ReservationStatus) Active() bool {
	return s == ReservationStatusPending || s == ReservationStatusApproved
}

type Reservation struct {
	ID         string            `json:"id"`
	VehicleID  string            `json:"vehicle_id"`
	UserID     string            `json:"user_id"`
	Quantity   int               `json:"quantity"`
	StartDate  time.Time         `json:"start_date"`
	EndDate    time.Time         `json:"end_date"`
	Status     ReservationStatus `json:"status"`
	TotalPrice float64           `json:"total_price"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (r *Reservation) Range() DateRange {
	return DateRange{Start: Day(r.StartDate), End: Day(r.EndDate)}
}

type RequestReservationInput struct {
	VehicleID string
	UserID    string
	Quantity  int
	StartDate time.Time
	EndDate   time.Time
}

// VehicleAvailability is the answer to an availability query: remaining
// quantity for every day of the requested range, keyed by YYYY-MM-DD, plus the
// minimum across the range (the quantity safe to book for the whole range).
type VehicleAvailability struct {
	VehicleID    string         `json:"vehicle_id"`
	Start        time.Time      `json:"start"`
	End          time.Time      `json:"end"`
	PerDay       map[string]int `json:"per_day_available"`
	MinAvailable int            `json:"min_available"`
}
