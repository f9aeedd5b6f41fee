// Package textextract reads CV documents and returns their plain text.
// Plain text files pass through unchanged; PDF and DOCX files are converted.
package textextract

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/nguyenthenguyen/docx"
)

// minContentLength is the minimum extracted length to treat a conversion as
// meaningful. Shorter output usually means a scanned or empty document.
const minContentLength = 30

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// FromFile extracts plain text from a CV document. The format is chosen by
// file extension: .pdf and .docx are converted, everything else is read as
// plain text.
func FromFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return fromPDF(path)
	case ".docx":
		return fromDocx(path)
	default:
		return fromPlainText(path)
	}
}

func fromPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read CV file %s: %w", path, err)
	}
	return string(data), nil
}

func fromPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", n+1, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if len(text) < minContentLength {
		return "", fmt.Errorf("no usable text in PDF %s (scanned document?)", path)
	}
	return text, nil
}

func fromDocx(path string) (string, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX %s: %w", path, err)
	}
	defer reader.Close()

	content := reader.Editable().GetContent()
	text := strings.TrimSpace(StripXML(content))
	if len(text) < minContentLength {
		return "", fmt.Errorf("no usable text in DOCX %s", path)
	}
	return text, nil
}

// StripXML removes markup from WordprocessingML content, inserting line
// breaks at paragraph boundaries so downstream line-based extraction works.
func StripXML(content string) string {
	// Paragraph and line break tags become newlines before tags are stripped
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:br/>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
