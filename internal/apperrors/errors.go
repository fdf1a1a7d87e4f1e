package apperrors

import (
	"errors"
)

var (
	ErrShutdown = errors.New("shutdown error")

	ErrStorageUnavailable = errors.New("contact storage unavailable")

	ErrPasscodeNotConfigured = errors.New("admin passcode is not configured")
	ErrInvalidPasscode       = errors.New("invalid passcode")
)
