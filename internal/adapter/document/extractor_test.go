package document

import (
	"errors"
	"reflect"
	"testing"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
	"github.com/adolfokaiser/precios-api/internal/domain/model"
)

type extractorStub struct {
	texts []string
	err   error
}

func (s *extractorStub) Extract(data []byte) ([]string, error) {
	return s.texts, s.err
}

func TestFindMatches(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"empty text", "", nil},
		{"no codes", "precio regular 22.50 por litro", nil},
		{"station code", "estación ACAP1234 reporta", []string{"ACAP1234"}},
		{"tax id code", "rfc GOPE870101AB1 registrado", []string{"GOPE870101AB1"}},
		{"three letter tax id", "emisor ABC123456XY9", []string{"ABC123456XY9"}},
		{
			name: "both patterns in one fragment",
			text: "ACAP1234 factura GOPE870101AB1",
			want: []string{"GOPE870101AB1", "ACAP1234"},
		},
		{"embedded in word", "xACAP1234y", nil},
		{"lowercase ignored", "acap1234", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindMatches(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("FindMatches(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestDetectKind(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		contentType string
		want        model.DocumentKind
		wantErr     bool
	}{
		{"xlsx content type", "report.bin", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", model.DocumentExcel, false},
		{"legacy excel content type", "report.bin", "application/vnd.ms-excel", model.DocumentExcel, false},
		{"xlsx extension fallback", "report.xlsx", "application/octet-stream", model.DocumentExcel, false},
		{"pdf content type", "report.bin", "application/pdf", model.DocumentPDF, false},
		{"pdf extension fallback", "Report.PDF", "", model.DocumentPDF, false},
		{"plain text rejected", "report.txt", "text/plain", "", true},
		{"no hints rejected", "report", "", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := DetectKind(tc.filename, tc.contentType)
			if tc.wantErr {
				if !errors.Is(err, domainErrors.ErrUnsupportedFile) {
					t.Fatalf("expected ErrUnsupportedFile, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != tc.want {
				t.Fatalf("kind = %q, want %q", kind, tc.want)
			}
		})
	}
}

func TestServiceProcess(t *testing.T) {
	excel := &extractorStub{texts: []string{"ACAP1234", "turno 2", "GOPE870101AB1 ACAP1234"}}
	svc := NewService(excel, &extractorStub{})

	extraction, err := svc.Process("sales.xlsx", "application/vnd.ms-excel", []byte("raw"))
	if err != nil {
		t.Fatalf("process returned error: %v", err)
	}
	if extraction.Kind != model.DocumentExcel {
		t.Fatalf("kind = %q", extraction.Kind)
	}
	want := []string{"ACAP1234", "GOPE870101AB1"}
	if !reflect.DeepEqual(extraction.Candidates, want) {
		t.Fatalf("candidates = %v, want %v", extraction.Candidates, want)
	}
	if extraction.Extracted == nil || *extraction.Extracted != "ACAP1234" {
		t.Fatalf("extracted = %v, want ACAP1234", extraction.Extracted)
	}
}

func TestServiceProcessNoMatches(t *testing.T) {
	svc := NewService(&extractorStub{texts: []string{"nada relevante"}}, nil)

	extraction, err := svc.Process("empty.xlsx", "", nil)
	if err != nil {
		t.Fatalf("process returned error: %v", err)
	}
	if len(extraction.Candidates) != 0 {
		t.Fatalf("candidates = %v, want empty", extraction.Candidates)
	}
	if extraction.Extracted != nil {
		t.Fatalf("extracted = %q, want nil", *extraction.Extracted)
	}
}

func TestServiceProcessUnsupported(t *testing.T) {
	svc := NewService(&extractorStub{}, &extractorStub{})
	if _, err := svc.Process("notes.txt", "text/plain", nil); !errors.Is(err, domainErrors.ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}

func TestServiceProcessParserUnavailable(t *testing.T) {
	svc := NewService(&extractorStub{}, nil)
	if _, err := svc.Process("report.pdf", "application/pdf", nil); !errors.Is(err, domainErrors.ErrParserUnavailable) {
		t.Fatalf("expected ErrParserUnavailable, got %v", err)
	}
}

func TestServiceProcessExtractorError(t *testing.T) {
	broken := &extractorStub{err: domainErrors.ErrInvalidFile}
	svc := NewService(broken, nil)
	if _, err := svc.Process("bad.xlsx", "", []byte{0x00}); !errors.Is(err, domainErrors.ErrInvalidFile) {
		t.Fatalf("expected ErrInvalidFile, got %v", err)
	}
}
