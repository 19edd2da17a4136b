package companies

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-screener/internal/analysis"
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

// RegisterRoutes attaches company routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/companies", h.upsert)
	rg.GET("/companies/:id", h.get)
	rg.GET("/companies", h.list)
}

type upsertRequest struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Requirements analysis.Profile `json:"requirements"`
}

func (h *Handler) upsert(c *gin.Context) {
	var req upsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	company, err := h.Svc.Upsert(c.Request.Context(), Company{
		ID:           req.ID,
		Name:         req.Name,
		Requirements: req.Requirements,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidProfile):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store company", nil)
		}
		return
	}

	c.Set("companyId", company.ID)
	respond.JSON(c, http.StatusCreated, toResponse(company))
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	company, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch company", nil)
		}
		return
	}

	c.Set("companyId", company.ID)
	respond.JSON(c, http.StatusOK, toResponse(company))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list companies", nil)
		return
	}

	resp := make([]CompanyResponse, 0, len(list))
	for _, company := range list {
		resp = append(resp, toResponse(company))
	}
	respond.JSON(c, http.StatusOK, resp)
}
