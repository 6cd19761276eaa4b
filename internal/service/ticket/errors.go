package ticket

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTicketID       = errors.New("invalid ticket id")
	ErrInvalidStatusFilter   = errors.New("invalid ticket status filter")

	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTransition   = errors.New("invalid ticket status transition")
	ErrCourierNotEligible  = errors.New("courier is not eligible for a payment ticket")
	ErrUnitMismatch        = errors.New("courier belongs to another unit")
	ErrTicketAlreadyExists = errors.New("ticket number already issued")
)
