package model

import "errors"

var (
	ErrValidation          = errors.New("invalid input")
	ErrInvalidState        = errors.New("operation not allowed in current state")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("amount below platform minimum")
	ErrExpired             = errors.New("deposit expired")
	ErrConcurrencyConflict = errors.New("concurrent update conflict")

	ErrUserNotFound        = errors.New("user not found")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrSeriesNotFound      = errors.New("series not found")
	ErrBetNotFound         = errors.New("bet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInfluencerNotFound  = errors.New("influencer not found")

	ErrDuplicateTransaction = errors.New("duplicate transaction")
	ErrUnauthorized         = errors.New("invalid or expired session")
	ErrForbidden            = errors.New("operation requires admin role")
)
