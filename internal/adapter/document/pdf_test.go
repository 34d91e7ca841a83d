package document

import (
	"errors"
	"testing"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
)

func TestPDFExtractorInvalidBytes(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty input", nil},
		{"garbage bytes", []byte("definitely not a pdf")},
		{"truncated header", []byte("%PDF-1.4")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPDFExtractor().Extract(tc.data); !errors.Is(err, domainErrors.ErrInvalidFile) {
				t.Fatalf("expected ErrInvalidFile, got %v", err)
			}
		})
	}
}
