package shop

import "errors"

// Domain errors raised when validating catalog shops at load time.

var (
	ErrEmptyID            = errors.New("shop id is required")
	ErrEmptyName          = errors.New("shop name is required")
	ErrInvalidCoordinates = errors.New("shop coordinates are outside the valid range")
	ErrInvalidRating      = errors.New("shop rating must be between 0 and 5")
	ErrEmptyProductName   = errors.New("product name is required")
	ErrNonPositivePrice   = errors.New("price must be greater than 0")
)
