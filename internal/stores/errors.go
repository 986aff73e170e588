package stores

import "errors"

var (
	// ErrDuplicateEmail is returned when registering an email that
	// already has an account.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login failures never reveal whether an account
	// exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrReferenceExhausted is returned when booking reference
	// generation keeps colliding past the retry bound.
	ErrReferenceExhausted = errors.New("could not generate a unique booking reference")
)
