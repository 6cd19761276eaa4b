package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidUnit           = errors.New("invalid unit")
	ErrInvalidShift          = errors.New("invalid shift")
	ErrInvalidWorkDays       = errors.New("invalid work days")
	ErrInvalidReorder        = errors.New("invalid reorder request")
	ErrStatusReadOnly        = errors.New("status is managed by dispatch")

	ErrCourierNotFound   = errors.New("courier not found")
	ErrConflict          = errors.New("resource already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCourierSuspended  = errors.New("courier is suspended")
)
