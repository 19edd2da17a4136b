package candidates

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches candidate routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/candidates", h.upsert)
	rg.GET("/candidates/:id", h.get)
}

type upsertRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ResumeText string `json:"resumeText"`
}

func (h *Handler) upsert(c *gin.Context) {
	var req upsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	candidate, err := h.Svc.Upsert(c.Request.Context(), Candidate{
		ID:         req.ID,
		Name:       req.Name,
		ResumeText: req.ResumeText,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCandidate):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store candidate", nil)
		}
		return
	}

	c.Set("candidateId", candidate.ID)
	respond.JSON(c, http.StatusCreated, toResponse(candidate))
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	candidate, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "candidate not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch candidate", nil)
		}
		return
	}

	c.Set("candidateId", candidate.ID)
	respond.JSON(c, http.StatusOK, toResponse(candidate))
}
