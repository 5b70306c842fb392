package renderer

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

const (
	systemFont     = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	systemBoldFont = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  []string
	}{
		{name: "empty", notes: "", want: nil},
		{name: "single", notes: "one paragraph", want: []string{"one paragraph"}},
		{name: "blank lines", notes: "first\n\nsecond\n\n\n\nthird", want: []string{"first", "second", "third"}},
		{name: "whitespace only paragraphs", notes: "a\n\n   \n\nb", want: []string{"a", "b"}},
		{name: "crlf", notes: "a\r\n\r\nb", want: []string{"a", "b"}},
		{name: "keeps single newlines", notes: "1. x\n2. y\n\nz", want: []string{"1. x\n2. y", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitParagraphs(tt.notes))
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{format: "", wantExt: "pdf"},
		{format: "pdf", wantExt: "pdf"},
		{format: "DOCX", wantExt: "docx"},
		{format: "html", wantErr: true},
	}

	for _, tt := range tests {
		r, err := New(tt.format, Options{}, logger.Nop())
		if tt.wantErr {
			assert.Error(t, err, tt.format)
			continue
		}
		require.NoError(t, err, tt.format)
		assert.Equal(t, tt.wantExt, r.Extension())
	}
}

func TestPDF_FallbackFont(t *testing.T) {
	dir := t.TempDir()
	r, err := New(FormatPDF, Options{
		FontPath:     filepath.Join(dir, "missing.ttf"),
		BoldFontPath: filepath.Join(dir, "missing-bold.ttf"),
	}, logger.Nop())
	require.NoError(t, err)

	out := filepath.Join(dir, "notes.pdf")
	require.NoError(t, r.Render(context.Background(), "Лекция 1", "Первый абзац.\n\nSecond paragraph.", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
	assert.Equal(t, "application/pdf", r.ContentType())
}

func TestPDF_UnicodeFont(t *testing.T) {
	if _, err := os.Stat(systemFont); err != nil {
		t.Skip("DejaVu fonts not installed")
	}
	if _, err := os.Stat(systemBoldFont); err != nil {
		t.Skip("DejaVu fonts not installed")
	}

	r := &pdfRenderer{opts: Options{FontPath: systemFont, BoldFontPath: systemBoldFont}, logger: logger.Nop()}
	pdf := r.build(context.Background(), "Конспект лекции", "Основные темы.\n\n- термин: определение")
	require.NoError(t, pdf.Error())

	out := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, pdf.OutputFileAndClose(out))
}

func TestPDF_Paginates(t *testing.T) {
	r := &pdfRenderer{logger: logger.Nop()}

	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("A paragraph of lecture notes that takes up some room on the page.\n\n")
	}

	pdf := r.build(context.Background(), "Long lecture", sb.String())
	require.NoError(t, pdf.Error())
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestPDF_EmptyNotes(t *testing.T) {
	r := &pdfRenderer{logger: logger.Nop()}

	pdf := r.build(context.Background(), "Title only", "\n\n  \n\n")
	require.NoError(t, pdf.Error())
	assert.Equal(t, 1, pdf.PageCount())
}

func TestPDF_UnwritablePath(t *testing.T) {
	r, err := New(FormatPDF, Options{}, logger.Nop())
	require.NoError(t, err)

	err = r.Render(context.Background(), "t", "n", filepath.Join(t.TempDir(), "missing", "notes.pdf"))
	assert.Error(t, err)
}

func TestDOCX(t *testing.T) {
	r, err := New(FormatDOCX, Options{}, logger.Nop())
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "notes.docx")
	require.NoError(t, r.Render(context.Background(), "Lecture 1", "First **key** point.\n\n1. one\n2. two", out))

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()

	var body string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		body = string(data)
	}

	assert.Contains(t, body, "Lecture 1")
	assert.Contains(t, body, "key")
	assert.Contains(t, body, "2. two")
	assert.NotContains(t, body, "**")
}
