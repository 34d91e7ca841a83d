package dto

import "github.com/adolfokaiser/precios-api/internal/domain/model"

// UploadResponse reports the extraction result for an uploaded document.
type UploadResponse struct {
	Filename   string   `json:"filename"`
	Kind       string   `json:"kind"`
	Extracted  *string  `json:"extracted"`
	Candidates []string `json:"candidates"`
}

// NewUploadResponse maps an extraction to its wire view.
func NewUploadResponse(extraction model.Extraction) UploadResponse {
	candidates := extraction.Candidates
	if candidates == nil {
		candidates = []string{}
	}
	return UploadResponse{
		Filename:   extraction.Filename,
		Kind:       string(extraction.Kind),
		Extracted:  extraction.Extracted,
		Candidates: candidates,
	}
}
