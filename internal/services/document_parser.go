package services

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"codeclutch/interview-api/internal/logger"
	"codeclutch/interview-api/internal/models"
)

type DocumentParserService interface {
	ExtractPDF(data []byte) (*models.ParsedDocument, error)
	ExtractDOCX(data []byte) (*models.ParsedDocument, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// ExtractPDF implements DocumentParserService.
func (p *documentParserService) ExtractPDF(data []byte) (*models.ParsedDocument, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty PDF file")
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.Warn().Err(err).Int("page", pageIndex).Msg("Skipping unreadable PDF page")
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &models.ParsedDocument{
		Type:      models.DocumentPDF,
		Text:      text,
		PageCount: totalPage,
	}, nil
}

// ExtractDOCX implements DocumentParserService.
func (p *documentParserService) ExtractDOCX(data []byte) (*models.ParsedDocument, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty DOCX file")
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse DOCX: %w", err)
	}
	defer doc.Close()

	text := strings.TrimSpace(docxXMLToText(doc.Editable().GetContent()))
	if text == "" {
		return nil, fmt.Errorf("no text content found in DOCX")
	}

	return &models.ParsedDocument{
		Type:      models.DocumentDOCX,
		Text:      text,
		PageCount: 1,
	}, nil
}

var (
	docxBreakTag = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	docxTabTag   = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag       = regexp.MustCompile(`<[^>]*>`)
)

// docxXMLToText turns WordprocessingML into plain text, one paragraph per line.
func docxXMLToText(content string) string {
	content = docxBreakTag.ReplaceAllString(content, "\n")
	content = docxTabTag.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
