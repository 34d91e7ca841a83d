package document

import (
	"regexp"
	"sort"
	"strings"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
	"github.com/adolfokaiser/precios-api/internal/domain/model"
)

// Tax-id-like codes (3-4 uppercase letters/Ñ/&, 6 digits, 3 alphanumerics)
// and station-like codes (4 uppercase letters, 4 digits).
var (
	taxIDPattern   = regexp.MustCompile(`\b[A-ZÑ&]{3,4}[0-9]{6}[A-Z0-9]{3}\b`)
	stationPattern = regexp.MustCompile(`\b[A-Z]{4}[0-9]{4}\b`)
)

// TextExtractor pulls all text content out of a raw document of one format.
type TextExtractor interface {
	Extract(data []byte) ([]string, error)
}

// Service detects the document kind and runs the code patterns over the
// extracted text. Extractors are injected; a nil extractor means the parser
// for that format is unavailable.
type Service struct {
	excel TextExtractor
	pdf   TextExtractor
}

// NewService constructs Service with the given format extractors.
func NewService(excel, pdf TextExtractor) *Service {
	return &Service{excel: excel, pdf: pdf}
}

// DetectKind classifies an upload by content type, falling back to the
// filename extension. Unknown formats yield ErrUnsupportedFile.
func DetectKind(filename, contentType string) (model.DocumentKind, error) {
	ct := strings.ToLower(contentType)
	name := strings.ToLower(filename)

	switch {
	case ct == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		ct == "application/vnd.ms-excel",
		strings.HasSuffix(name, ".xlsx"):
		return model.DocumentExcel, nil
	case ct == "application/pdf", strings.HasSuffix(name, ".pdf"):
		return model.DocumentPDF, nil
	}
	return "", domainErrors.ErrUnsupportedFile
}

// Process parses the document and returns the matched code candidates.
// Candidates are de-duplicated across both patterns and all text fragments,
// then sorted lexicographically so the "first" choice is deterministic.
func (s *Service) Process(filename, contentType string, data []byte) (*model.Extraction, error) {
	kind, err := DetectKind(filename, contentType)
	if err != nil {
		return nil, err
	}

	extractor := s.extractorFor(kind)
	if extractor == nil {
		return nil, domainErrors.ErrParserUnavailable
	}

	texts, err := extractor.Extract(data)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, text := range texts {
		for _, match := range FindMatches(text) {
			seen[match] = true
		}
	}
	candidates := make([]string, 0, len(seen))
	for match := range seen {
		candidates = append(candidates, match)
	}
	sort.Strings(candidates)

	result := &model.Extraction{
		Filename:   filename,
		Kind:       kind,
		Candidates: candidates,
	}
	if len(candidates) > 0 {
		result.Extracted = &candidates[0]
	}
	return result, nil
}

func (s *Service) extractorFor(kind model.DocumentKind) TextExtractor {
	switch kind {
	case model.DocumentExcel:
		return s.excel
	case model.DocumentPDF:
		return s.pdf
	}
	return nil
}

// FindMatches returns every occurrence of either code pattern in the text.
func FindMatches(text string) []string {
	if text == "" {
		return nil
	}
	matches := taxIDPattern.FindAllString(text, -1)
	matches = append(matches, stationPattern.FindAllString(text, -1)...)
	return matches
}
