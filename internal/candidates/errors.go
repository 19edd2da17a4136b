package candidates

import "errors"

var (
	// ErrNotFound indicates the candidate does not exist.
	ErrNotFound = errors.New("candidate not found")

	// ErrInvalidCandidate indicates missing or unusable candidate data.
	ErrInvalidCandidate = errors.New("invalid candidate")
)
