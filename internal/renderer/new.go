package renderer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

type Options struct {
	FontPath     string
	BoldFontPath string
}

// New returns the renderer for format.
func New(format string, opts Options, log logger.Logger) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatPDF:
		return &pdfRenderer{opts: opts, logger: log}, nil
	case FormatDOCX:
		return &docxRenderer{logger: log}, nil
	default:
		return nil, fmt.Errorf("unsupported document format %q", format)
	}
}

// splitParagraphs splits notes on blank lines and drops empty paragraphs.
func splitParagraphs(notes string) []string {
	notes = strings.ReplaceAll(notes, "\r\n", "\n")

	var paragraphs []string
	for _, p := range strings.Split(notes, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

func stripInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
