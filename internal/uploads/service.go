package uploads

import (
	"context"
	"fmt"
	"io"

	"resume-screener/internal/extract"
	"resume-screener/internal/screenings"
	"resume-screener/internal/shared/metrics"
	"resume-screener/internal/shared/storage/object"
	"resume-screener/internal/shared/telemetry"
	"resume-screener/internal/shared/util"
)

// previewChars caps the extracted-text preview in the response.
const previewChars = 1000

// Service stores uploaded resumes and runs the quality analysis over
// their extracted text.
type Service struct {
	Store    object.ObjectStore
	Screener *screenings.Service
}

// NewService constructs a Service.
func NewService(store object.ObjectStore, screener *screenings.Service) *Service {
	return &Service{Store: store, Screener: screener}
}

// Upload saves the file to object storage, extracts its text and
// builds the quality report. The extractor persists a derived
// .extracted.txt object next to the original, so later reads skip
// re-parsing.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (UploadResult, error) {
	if _, err := util.SanitizeFileName(fileName); err != nil {
		return UploadResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, fileName, r)
	if err != nil {
		return UploadResult{}, err
	}
	metrics.IncResumeUploaded()

	text, err := extract.Text(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		return UploadResult{}, err
	}

	res, err := s.Screener.Screen(ctx, text, nil)
	if err != nil {
		return UploadResult{}, err
	}

	telemetry.Info("uploads.resume", map[string]any{
		"key":        storageKey,
		"size_bytes": size,
		"mime_type":  mimeType,
	})

	return UploadResult{
		ResumeKey: storageKey,
		FileName:  fileName,
		MimeType:  mimeType,
		SizeBytes: size,
		Preview:   preview(text),
		Report:    res.Report,
	}, nil
}

// preview returns the first previewChars characters of text, cut on a
// rune boundary.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewChars {
		return text
	}
	return string(runes[:previewChars])
}
