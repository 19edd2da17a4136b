package companies

import (
	"time"

	"resume-screener/internal/analysis"
)

// Company holds a named requirement profile candidates are screened against.
type Company struct {
	ID           string
	Name         string
	Requirements analysis.Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
