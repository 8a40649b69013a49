package domain

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrUnknownTier         = errors.New("unknown service tier")
	ErrNotFound            = errors.New("not found")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrDuplicatePayment    = errors.New("idea already paid for")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrGateway             = errors.New("payment gateway failure")
	ErrInvalidTransition   = errors.New("invalid status")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)
