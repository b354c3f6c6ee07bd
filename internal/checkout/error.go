package checkout

import "errors"

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidStage          = errors.New("invalid tracking stage")
	ErrInvalidPaymentMethod  = errors.New("unsupported payment method")
	ErrInvalidShippingMethod = errors.New("unsupported shipping method")
)
