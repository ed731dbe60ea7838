package errs

import "errors"

// Sentinel errors shared across the usecase and infra layers
var (
	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Gateway errors
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrGatewayRejected    = errors.New("payment gateway rejected the request")
	ErrGatewayContract    = errors.New("payment gateway returned an unusable response")

	// Idempotency errors
	ErrIdempotencyStoreFailed = errors.New("idempotency store operation failed")
)
