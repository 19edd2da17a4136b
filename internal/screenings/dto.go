package screenings

import "resume-screener/internal/analysis"

// Result couples one resume's fit evaluation with its quality report.
// Quality-only screenings carry a zero fit with an empty breakdown.
type Result struct {
	Fit      analysis.FitResult           `json:"fit"`
	Entities analysis.Entities            `json:"entities"`
	Report   analysis.ComprehensiveReport `json:"report"`
}

// PairResult is a screening of a stored candidate against a stored
// company's requirements.
type PairResult struct {
	CompanyID     string `json:"companyId"`
	CandidateID   string `json:"candidateId"`
	CandidateName string `json:"candidateName,omitempty"`
	Result
}

// BulkEntry is one candidate's fit within a bulk screening.
type BulkEntry struct {
	CandidateID   string             `json:"candidateId"`
	CandidateName string             `json:"candidateName,omitempty"`
	Fit           analysis.FitResult `json:"fit"`
}

// BulkResult holds bulk screening entries sorted by fit score
// descending, candidate id ascending on equal scores.
type BulkResult struct {
	Results []BulkEntry `json:"results"`
	Count   int         `json:"count"`
}
