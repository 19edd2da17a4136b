package companies

import (
	"time"

	"resume-screener/internal/analysis"
)

// CompanyResponse is the outward-facing representation of a company.
type CompanyResponse struct {
	CompanyID    string           `json:"companyId"`
	Name         string           `json:"name"`
	Requirements analysis.Profile `json:"requirements"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func toResponse(company Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:    company.ID,
		Name:         company.Name,
		Requirements: company.Requirements,
		CreatedAt:    company.CreatedAt,
		UpdatedAt:    company.UpdatedAt,
	}
}
