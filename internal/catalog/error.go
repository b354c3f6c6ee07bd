package catalog

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCatalogUnavailable = errors.New("catalog service unavailable")
	ErrUnexpectedStatus   = errors.New("unexpected catalog response status")
	ErrInvalidPage        = errors.New("invalid page")
)
