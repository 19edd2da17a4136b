package screenings

import "errors"

var (
	// ErrEmptyResume indicates screening input with no resume text.
	ErrEmptyResume = errors.New("resume text is required")

	// ErrNoRequirements indicates a bulk screening that named neither a
	// stored company nor an inline requirement profile.
	ErrNoRequirements = errors.New("requirement profile is required")
)
