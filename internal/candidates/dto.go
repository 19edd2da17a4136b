package candidates

import "time"

// CandidateResponse is the outward-facing representation of a candidate.
type CandidateResponse struct {
	CandidateID string    `json:"candidateId"`
	Name        string    `json:"name"`
	ResumeText  string    `json:"resumeText"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toResponse(candidate Candidate) CandidateResponse {
	return CandidateResponse{
		CandidateID: candidate.ID,
		Name:        candidate.Name,
		ResumeText:  candidate.ResumeText,
		CreatedAt:   candidate.CreatedAt,
		UpdatedAt:   candidate.UpdatedAt,
	}
}
