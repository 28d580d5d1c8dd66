package services

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor converts one document format into plain text.
type TextExtractor interface {
	Extract(filePath string) (string, error)
}

// ExtractorService dispatches extraction by file extension. Extensions
// without a registered extractor yield empty text rather than an error;
// files the underlying parser cannot open at all yield an error.
type ExtractorService interface {
	ExtractText(filePath string) (string, error)
}

type extractorService struct {
	byExt map[string]TextExtractor
}

func NewExtractorService() ExtractorService {
	return &extractorService{
		byExt: map[string]TextExtractor{
			".pdf":  &pdfExtractor{},
			".docx": &docxExtractor{},
		},
	}
}

// ExtractText implements ExtractorService.
func (s *extractorService) ExtractText(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	extractor, ok := s.byExt[ext]
	if !ok {
		return "", nil
	}
	return extractor.Extract(filePath)
}

type pdfExtractor struct{}

// Extract reads a PDF page by page and joins the page texts with single
// spaces. Pages without extractable text contribute an empty string, so
// page boundaries still produce a separating space.
func (p *pdfExtractor) Extract(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}

		pages = append(pages, text)
	}

	return strings.Join(pages, " "), nil
}

var (
	docxParagraph = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	docxRunText   = regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`)

	xmlEntities = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
)

type docxExtractor struct{}

// Extract pulls each paragraph's run text out of word/document.xml and
// joins the paragraphs with single spaces, preserving document order.
func (d *docxExtractor) Extract(filePath string) (string, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer zr.Close()

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to read DOCX body: %w", err)
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read DOCX body: %w", err)
		}
		break
	}

	if len(docXML) == 0 {
		return "", fmt.Errorf("no document.xml found in DOCX")
	}

	var paragraphs []string
	for _, para := range docxParagraph.FindAllString(string(docXML), -1) {
		var sb strings.Builder
		for _, run := range docxRunText.FindAllStringSubmatch(para, -1) {
			sb.WriteString(xmlEntities.Replace(run[1]))
		}
		paragraphs = append(paragraphs, sb.String())
	}

	return strings.Join(paragraphs, " "), nil
}
