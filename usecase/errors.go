package usecase

import "errors"

var (
	// ErrUnauthenticated guards operations that must never reach the backend
	// without an authenticated actor.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is the access-policy rejection for mutating a resource the
	// actor does not own.
	ErrForbidden = errors.New("not allowed to modify this resource")

	// ErrTooManyImages rejects an oversized upload batch before any storage
	// call is made.
	ErrTooManyImages = errors.New("you can upload a maximum of 5 images")
)
