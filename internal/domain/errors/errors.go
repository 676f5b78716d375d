package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSessionExpired      = errors.New("session expired")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidDirection    = errors.New("invalid exchange direction")
	ErrInvalidProvider     = errors.New("unknown service provider")
	ErrInvalidPayment      = errors.New("unknown payment method")
	ErrInvalidStatusFilter = errors.New("unknown status filter")
	ErrInvalidScreen       = errors.New("unknown screen")
	ErrPhoneImmutable      = errors.New("phone number cannot be changed")
)
