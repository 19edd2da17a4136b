package candidates

import "time"

// Candidate holds a person's resume text for screening.
type Candidate struct {
	ID         string
	Name       string
	ResumeText string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
