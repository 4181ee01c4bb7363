package domain

import "errors"

// Failure taxonomy returned by the stores, the booking engine and the
// session manager. All of these are recovered by the caller and rendered as
// form or action feedback, never as a crash.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyBooked      = errors.New("already booked")
	ErrBookingClosed      = errors.New("booking closed")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
