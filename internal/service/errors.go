package service

import "errors"

var (
	// ErrUnknownPackage is returned for a checkout against a package id not
	// on the server-side price list.
	ErrUnknownPackage = errors.New("invalid package")

	// ErrFreePackage is returned when checkout is requested for a
	// zero-amount package.
	ErrFreePackage = errors.New("free packages don't require payment")
)
