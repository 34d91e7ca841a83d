package document

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
)

// PDFExtractor pulls the plain text of every page of a PDF held in memory.
type PDFExtractor struct{}

// NewPDFExtractor constructs PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract returns the concatenated text of all pages as a single fragment.
// The underlying decoder panics on some malformed inputs, so failures of
// either shape are reported as ErrInvalidFile with the original detail.
func (e *PDFExtractor) Extract(data []byte) (texts []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			texts = nil
			err = fmt.Errorf("%w: invalid pdf: %v", domainErrors.ErrInvalidFile, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pdf: %v", domainErrors.ErrInvalidFile, err)
	}

	content, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pdf: %v", domainErrors.ErrInvalidFile, err)
	}

	text, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pdf: %v", domainErrors.ErrInvalidFile, err)
	}
	return []string{string(text)}, nil
}
