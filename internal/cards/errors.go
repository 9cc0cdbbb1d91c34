package cards

import "errors"

var (
	ErrNotFound     = errors.New("card not found")
	ErrInvalidInput = errors.New("invalid card input")
)
