package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNotResourceOwner = errors.New("you can only manage your own resources")

	// ErrNotSignedIn is returned by client-side services when an operation
	// that needs an active session is called before SignIn.
	ErrNotSignedIn = errors.New("not signed in")
)
