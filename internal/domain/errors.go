package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrInvalidDateRange         = errors.New("invalid date range")
	ErrQuantityExceedsInventory = errors.New("quantity exceeds vehicle inventory")
	ErrInsufficientAvailability = errors.New("insufficient availability for the requested dates")
	ErrReservationNotPending    = errors.New("reservation is not in pending status")
	ErrReservationNotActive     = errors.New("reservation is not active")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)

// InsufficientAvailabilityError reports how many units are actually free for
// the whole requested range, so the caller can offer that figure back to the
// user. errors.Is(err, ErrInsufficientAvailability) matches it.
type InsufficientAvailabilityError struct {
	Available int
}

func (e *InsufficientAvailabilityError) Error() string {
	return fmt.Sprintf("%v: %d available", ErrInsufficientAvailability, e.Available)
}

func (e *InsufficientAvailabilityError) Unwrap() error {
	return ErrInsufficientAvailability
}
