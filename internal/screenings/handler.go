package screenings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-screener/internal/analysis"
	"resume-screener/internal/candidates"
	"resume-screener/internal/companies"
	"resume-screener/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches screening routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/screenings", h.screen)
	rg.POST("/screenings/by-id", h.screenPair)
	rg.POST("/screenings/bulk", h.screenBulk)
}

type screenRequest struct {
	ResumeText   string            `json:"resumeText"`
	Requirements *analysis.Profile `json:"requirements"`
}

func (h *Handler) screen(c *gin.Context) {
	var req screenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Screen(c.Request.Context(), req.ResumeText, req.Requirements)
	if err != nil {
		respondScreeningError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, res)
}

type pairRequest struct {
	CompanyID   string `json:"companyId"`
	CandidateID string `json:"candidateId"`
}

func (h *Handler) screenPair(c *gin.Context) {
	var req pairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.ScreenPair(c.Request.Context(), req.CompanyID, req.CandidateID)
	if err != nil {
		respondScreeningError(c, err)
		return
	}

	c.Set("companyId", res.CompanyID)
	c.Set("candidateId", res.CandidateID)
	respond.JSON(c, http.StatusOK, res)
}

type bulkRequest struct {
	CompanyID    string            `json:"companyId"`
	Requirements *analysis.Profile `json:"requirements"`
	CandidateIDs []string          `json:"candidateIds"`
}

func (h *Handler) screenBulk(c *gin.Context) {
	var req bulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	profile, err := h.bulkProfile(c, req)
	if err != nil {
		respondScreeningError(c, err)
		return
	}

	res, err := h.Svc.ScreenBulk(c.Request.Context(), profile, req.CandidateIDs)
	if err != nil {
		respondScreeningError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, res)
}

// bulkProfile resolves the requirement profile for a bulk screening: a
// stored company's requirements when companyId is given, the inline
// profile otherwise.
func (h *Handler) bulkProfile(c *gin.Context, req bulkRequest) (analysis.Profile, error) {
	if id := strings.TrimSpace(req.CompanyID); id != "" {
		company, err := h.Svc.Companies.GetByID(c.Request.Context(), id)
		if err != nil {
			return analysis.Profile{}, err
		}
		c.Set("companyId", company.ID)
		return company.Requirements, nil
	}
	if req.Requirements != nil {
		return *req.Requirements, nil
	}
	return analysis.Profile{}, ErrNoRequirements
}

func respondScreeningError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyResume),
		errors.Is(err, ErrNoRequirements),
		errors.Is(err, analysis.ErrInvalidProfile):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, companies.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
	case errors.Is(err, candidates.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "screening failed", nil)
	}
}
