package renderer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

const (
	docxFont      = "Times New Roman"
	docxTitleSize = 18
	docxBodySize  = 12
	docxColor     = "000000"
)

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

type docxRenderer struct {
	logger logger.Logger
}

func (r *docxRenderer) Extension() string { return FormatDOCX }
func (r *docxRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (r *docxRenderer) Render(ctx context.Context, title, notes, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create docx: %w", err)
	}

	addRun(doc.AddParagraph(""), title, true, docxTitleSize)
	doc.AddParagraph("")

	for _, p := range splitParagraphs(notes) {
		for _, line := range strings.Split(p, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				addLine(doc.AddParagraph(""), line)
			}
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}

	r.logger.Info(ctx, "DOCX created: %s", outputPath)
	return nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(stripInline(text)).Font(docxFont).Size(size).Color(docxColor)
	if bold {
		run.Bold(true)
	}
}

// addLine writes text as runs, turning **x** spans into bold runs.
func addLine(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			addRun(p, part, false, docxBodySize)
		}
		if i < len(matches) {
			addRun(p, matches[i][1], true, docxBodySize)
		}
	}
}
