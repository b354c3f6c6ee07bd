package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrInvalidProduct  = errors.New("invalid product")

	// -- Persistence --
	ErrMalformedCart = errors.New("malformed saved cart")
)
