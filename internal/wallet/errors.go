package wallet

import "errors"

var (
	ErrNotFound     = errors.New("card record not found")
	ErrInvalidInput = errors.New("invalid card record input")
)
