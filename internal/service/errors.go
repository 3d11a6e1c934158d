package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a write carries missing or
	// malformed required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Authenticate for both an unknown
	// email and a wrong password. The two cases are deliberately
	// indistinguishable so the API does not leak which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenIsExpired is returned by ParseToken when the token's expiry
	// lies in the past.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid is returned by ParseToken for every other
	// verification failure (bad signature, malformed string, wrong issuer).
	ErrTokenIsInvalid = errors.New("token is invalid")

	// ErrTokenCreationFailed is returned when signing a new token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
