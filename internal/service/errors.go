package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login both for an unknown email
	// and for a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrPasswordHashingFailed = errors.New("password hashing failed")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")

	ErrBookingIDGenerationFailed = errors.New("booking id generation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNotReady = errors.New("service is not ready")
)
