package uploads

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-screener/internal/extract"
	"resume-screener/internal/shared/server/respond"
)

const defaultMaxUploadMB = 10

// Handler wires the resume upload route to the service.
type Handler struct {
	Svc            *Service
	maxUploadBytes int64
}

// NewHandler constructs a Handler. maxUploadMB caps the multipart body
// size; values below 1 fall back to the default.
func NewHandler(svc *Service, maxUploadMB int64) *Handler {
	if maxUploadMB < 1 {
		maxUploadMB = defaultMaxUploadMB
	}
	return &Handler{Svc: svc, maxUploadBytes: maxUploadMB << 20}
}

// RegisterRoutes attaches the resume upload route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "file exceeds the upload limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	res, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, extract.ErrUnsupportedFormat):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported document format", nil)
		case errors.Is(err, extract.ErrCorruptDocument):
			respond.Error(c, http.StatusUnprocessableEntity, "unprocessable", "document could not be parsed", nil)
		case errors.Is(err, extract.ErrEmptyDocument):
			respond.Error(c, http.StatusUnprocessableEntity, "unprocessable", "document contains no extractable text", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
		}
		return
	}

	c.Set("resumeKey", res.ResumeKey)
	respond.JSON(c, http.StatusCreated, res)
}
