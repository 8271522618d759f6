package reservation

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. Anything
// else coming out of the service is a storage failure.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrNotEnoughSeats      = errors.New("not enough seats available")
	ErrSeatsTaken          = errors.New("seats no longer available")
	ErrReservationNotFound = errors.New("reservation not found")
)
