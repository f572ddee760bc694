package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Kind is the closed set of supported document formats. Anything not
// recognized as PDF or DOCX is treated as plain text.
type Kind int

const (
	KindPlainText Kind = iota
	KindPDF
	KindDOCX
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindDOCX:
		return "docx"
	default:
		return "plaintext"
	}
}

// Error reports that a payload could not be interpreted as its declared kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// DetectKind maps a declared media type to a format kind, falling back to
// the filename extension when the media type is absent or generic.
func DetectKind(mediaType string, fileName string) Kind {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mediaType, ";")[0]))
	switch clean {
	case mimePDF:
		return KindPDF
	case mimeDOCX:
		return KindDOCX
	case "", "application/octet-stream", "application/zip":
		switch strings.ToLower(filepath.Ext(fileName)) {
		case ".pdf":
			return KindPDF
		case ".docx":
			return KindDOCX
		}
	}
	return KindPlainText
}

// FromBytes extracts plain text from an in-memory payload according to its
// declared media type. It has no side effects beyond reading data.
func FromBytes(data []byte, mediaType string, fileName string) (string, error) {
	kind := DetectKind(mediaType, fileName)

	var (
		text string
		err  error
	)
	switch kind {
	case KindPDF:
		text, err = extractPDF(data)
	case KindDOCX:
		text, err = extractDOCX(data)
	default:
		text, err = decodePlainText(data)
	}
	if err != nil {
		return "", &Error{Kind: kind, Err: err}
	}
	return text, nil
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf parser panics on some malformed inputs; contain that here
	// so callers always get an error.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("pdf parser panic: %v", rec)
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	return stripDocxXML(raw)
}

func stripDocxXML(raw []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

func decodePlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("payload is not valid UTF-8 text")
	}
	return string(data), nil
}
