package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrParentNotFound     = errors.New("parent not found")
	ErrChildNotFound      = errors.New("child not found")
	ErrChoreNotFound      = errors.New("chore not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
	ErrInvalidPin         = errors.New("invalid pin")

	ErrChildNotOwned     = errors.New("child does not belong to this parent")
	ErrNegativeGems      = errors.New("gems must not be negative")
	ErrInvalidStatus     = errors.New("invalid chore status")
	ErrIllegalTransition = errors.New("illegal chore status transition")

	ErrNoDefaultPaymentMethod = errors.New("no default payment method")
	ErrPaymentMethodNotFound  = errors.New("payment method not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrNoGemsEarned           = errors.New("child has not earned any gems yet")
)
