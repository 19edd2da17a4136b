package uploads

import "resume-screener/internal/analysis"

// UploadResult is the upload response: where the resume landed plus
// the quality evaluation of its extracted text.
type UploadResult struct {
	ResumeKey string                       `json:"resumeKey"`
	FileName  string                       `json:"fileName"`
	MimeType  string                       `json:"mimeType"`
	SizeBytes int64                        `json:"sizeBytes"`
	Preview   string                       `json:"preview"`
	Report    analysis.ComprehensiveReport `json:"report"`
}
