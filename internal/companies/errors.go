package companies

import "errors"

var (
	// ErrNotFound indicates the company does not exist.
	ErrNotFound = errors.New("company not found")

	// ErrInvalidProfile indicates a missing or malformed requirement profile.
	ErrInvalidProfile = errors.New("invalid requirement profile")
)
