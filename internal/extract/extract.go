// Package extract turns uploaded resume documents into plain text.
// PDF parsing uses github.com/ledongthuc/pdf, DOCX parsing uses
// github.com/nguyenthenguyen/docx.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-screener/internal/shared/storage/object"
)

// Supported document formats.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	// ErrUnsupportedFormat is returned when the declared format is
	// neither PDF nor DOCX.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrCorruptDocument is returned when a supported format cannot be
	// parsed.
	ErrCorruptDocument = errors.New("corrupt document")
	// ErrEmptyDocument is returned when parsing succeeds but yields no
	// usable text.
	ErrEmptyDocument = errors.New("document contains no extractable text")
)

// Text pulls text from a stored object and persists a derived
// .extracted.txt copy next to it, so later reads skip re-parsing.
func Text(ctx context.Context, store object.ObjectStore, fileKey string, declared string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := store.Open(ctx, fileKey)
	if err != nil {
		return "", fmt.Errorf("extract key=%s format=%s: %w", fileKey, declared, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("extract key=%s format=%s: read: %w", fileKey, declared, err)
	}

	text, err := TextFromBytes(ctx, raw, declared, fileName)
	if err != nil {
		return "", err
	}

	extractedKey := fileKey + ".extracted.txt"
	if err := saveExtracted(ctx, store, extractedKey, text); err != nil {
		return "", fmt.Errorf("extract key=%s format=%s: %w", fileKey, declared, err)
	}

	return text, nil
}

// TextFromBytes extracts plain text from an in-memory document.
// declared may be a short format name ("pdf", "docx"), a mime type, or
// blank, in which case the file name and payload decide.
func TextFromBytes(ctx context.Context, data []byte, declared string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		text string
		err  error
	)
	switch NormalizeFormat(declared, fileName, data) {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, declared)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

// NormalizeFormat resolves a declared format or mime type to one of the
// supported format names, or "" when unrecognized. Zip payloads are
// sniffed for the DOCX document part before falling back to the file
// extension, since browsers often upload DOCX as application/zip.
func NormalizeFormat(declared string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(declared, ";")[0]))
	switch clean {
	case FormatPDF, mimePDF, "application/x-pdf":
		return FormatPDF
	case FormatDOCX, mimeDOCX:
		return FormatDOCX
	}

	if clean == "application/zip" || clean == "application/octet-stream" || clean == "" {
		if isDocxZip(data) {
			return FormatDOCX
		}
		if bytes.HasPrefix(data, []byte("%PDF-")) {
			return FormatPDF
		}
		switch strings.ToLower(filepath.Ext(fileName)) {
		case ".pdf":
			return FormatPDF
		case ".docx":
			return FormatDOCX
		}
	}
	return ""
}

func isDocxZip(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}

type keySaver interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
}

func saveExtracted(ctx context.Context, store object.ObjectStore, key string, text string) error {
	saver, ok := store.(keySaver)
	if !ok {
		return errors.New("object store does not support SaveWithKey")
	}
	_, err := saver.SaveWithKey(ctx, key, "text/plain; charset=utf-8", strings.NewReader(text))
	return err
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty payload", ErrCorruptDocument)
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML flattens WordprocessingML to text, keeping paragraph and
// line breaks as newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
