package models

type DocumentType string

const (
	DocumentPDF  DocumentType = "pdf"
	DocumentDOCX DocumentType = "docx"
)

// Extension returns the filename suffix accepted for the type.
func (t DocumentType) Extension() string {
	return "." + string(t)
}

// ParsedDocument is the text pulled out of an uploaded resume file.
type ParsedDocument struct {
	Type      DocumentType
	Text      string
	PageCount int
}
