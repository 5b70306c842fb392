package renderer

import (
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

const (
	unicodeFamily  = "DejaVuSans"
	fallbackFamily = "Helvetica"

	marginMM     = 20
	titleSizePt  = 18
	bodySizePt   = 12
	titleLineMM  = 9
	bodyLineMM   = 5.6
	titleSpaceMM = 10
	paraSpaceMM  = 3.5
)

type pdfRenderer struct {
	opts   Options
	logger logger.Logger
}

func (r *pdfRenderer) Extension() string   { return FormatPDF }
func (r *pdfRenderer) ContentType() string { return "application/pdf" }

func (r *pdfRenderer) Render(ctx context.Context, title, notes, outputPath string) error {
	pdf := r.build(ctx, title, notes)
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	r.logger.Info(ctx, "PDF created: %s", outputPath)
	return nil
}

func (r *pdfRenderer) build(ctx context.Context, title, notes string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	pdf.SetTitle(title, true)
	pdf.SetCreator("lecture-notes", false)

	family, tr := r.loadFonts(ctx, pdf)

	pdf.AddPage()

	pdf.SetFont(family, "B", titleSizePt)
	pdf.MultiCell(0, titleLineMM, tr(title), "", "C", false)
	pdf.Ln(titleSpaceMM)

	pdf.SetFont(family, "", bodySizePt)
	for _, p := range splitParagraphs(notes) {
		pdf.MultiCell(0, bodyLineMM, tr(stripInline(p)), "", "L", false)
		pdf.Ln(paraSpaceMM)
	}

	return pdf
}

// loadFonts registers the Unicode TTF fonts. When they cannot be loaded the
// built-in Helvetica is used and text is translated to cp1252, losing glyphs
// outside that code page.
func (r *pdfRenderer) loadFonts(ctx context.Context, pdf *fpdf.Fpdf) (string, func(string) string) {
	pdf.AddUTF8Font(unicodeFamily, "", r.opts.FontPath)
	pdf.AddUTF8Font(unicodeFamily, "B", r.opts.BoldFontPath)
	if !pdf.Err() {
		return unicodeFamily, func(s string) string { return s }
	}

	r.logger.Warn(ctx, "Failed to load %s fonts for PDF: %v, falling back to %s", unicodeFamily, pdf.Error(), fallbackFamily)
	pdf.ClearError()
	return fallbackFamily, pdf.UnicodeTranslatorFromDescriptor("")
}
