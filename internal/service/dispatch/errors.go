package dispatch

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidDeliveryCount  = errors.New("delivery count must be at least 1")
	ErrMissingReason         = errors.New("summon reason is required")
)
