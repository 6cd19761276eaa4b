package history

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPeriod         = errors.New("invalid ranking period")

	ErrOpenRecordNotFound = errors.New("open delivery history record not found")
)
