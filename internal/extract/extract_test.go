package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

const minimalDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>%s</w:t></w:r></w:p></w:body>
</w:document>`

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": strings.Replace(minimalDocumentXML, "%s", body, 1),
	}
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytesDocx(t *testing.T) {
	data := buildDocx(t, "Go developer with 5 years of experience")

	text, err := TextFromBytes(context.Background(), data, FormatDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(text, "Go developer with 5 years of experience") {
		t.Fatalf("extracted text = %q", text)
	}
}

func TestTextFromBytesZipDeclaredDocx(t *testing.T) {
	data := buildDocx(t, "body")
	if _, err := TextFromBytes(context.Background(), data, "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextFromBytesUnsupportedFormat(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte("plain words"), "text/rtf", "resume.rtf")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestTextFromBytesCorruptDocuments(t *testing.T) {
	if _, err := TextFromBytes(context.Background(), []byte("not a zip"), FormatDOCX, "r.docx"); !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("docx err = %v, want ErrCorruptDocument", err)
	}
	if _, err := TextFromBytes(context.Background(), []byte("not a pdf"), FormatPDF, "r.pdf"); !errors.Is(err, ErrCorruptDocument) {
		t.Fatalf("pdf err = %v, want ErrCorruptDocument", err)
	}
}

func TestTextFromBytesEmptyDocument(t *testing.T) {
	data := buildDocx(t, "   ")
	_, err := TextFromBytes(context.Background(), data, FormatDOCX, "blank.docx")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("err = %v, want ErrEmptyDocument", err)
	}
}

func TestNormalizeFormat(t *testing.T) {
	docxData := buildDocx(t, "x")
	cases := []struct {
		declared string
		fileName string
		data     []byte
		want     string
	}{
		{"pdf", "r.pdf", nil, FormatPDF},
		{"application/pdf", "r.pdf", nil, FormatPDF},
		{"DOCX", "r.docx", nil, FormatDOCX},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document; charset=utf-8", "r.docx", nil, FormatDOCX},
		{"application/zip", "r.docx", docxData, FormatDOCX},
		{"application/octet-stream", "r.pdf", []byte("%PDF-1.4 rest"), FormatPDF},
		{"", "resume.docx", nil, FormatDOCX},
		{"text/plain", "r.txt", nil, ""},
	}
	for _, c := range cases {
		if got := NormalizeFormat(c.declared, c.fileName, c.data); got != c.want {
			t.Fatalf("NormalizeFormat(%q, %q) = %q, want %q", c.declared, c.fileName, got, c.want)
		}
	}
}

func TestNormalizeFormatPlainZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}
