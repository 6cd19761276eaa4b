package display

import "errors"

var (
	ErrUndefinedKind = errors.New("undefined dispatch event kind")
	ErrForeignUnit   = errors.New("event belongs to another unit")
)
