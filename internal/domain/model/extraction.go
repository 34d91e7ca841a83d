package model

// DocumentKind identifies the parsed file format of an upload.
type DocumentKind string

const (
	DocumentExcel DocumentKind = "excel"
	DocumentPDF   DocumentKind = "pdf"
)

// Extraction is the result of running the code patterns over an uploaded
// document. Candidates are de-duplicated and sorted lexicographically;
// Extracted is the first candidate or nil when nothing matched.
type Extraction struct {
	Filename   string
	Kind       DocumentKind
	Extracted  *string
	Candidates []string
}
