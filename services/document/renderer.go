// Package document renders a completed form record as a PDF.
package document

import (
	"bytes"
	"fmt"
	"time"

	"voiceform/models"

	"github.com/jung-kurt/gofpdf"
)

const (
	Title          = "Draft Form - Generated by AI Assistant"
	NotProvided    = "Not provided"
	footerNotice   = "This form was automatically filled using AI Voice Assistant technology."
	pageWidth      = 210.0
	leftMargin     = 20.0
	valueWidth     = 170.0
	pageBreakAfter = 250.0
	topAfterBreak  = 20.0
)

// Renderer produces a downloadable document for a set of answers.
type Renderer interface {
	Render(fields []models.FieldSpec, values map[string]string, language string) ([]byte, error)
}

// PDFRenderer lays out one question/answer block per field on A4 pages.
type PDFRenderer struct {
	now func() time.Time
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{now: time.Now}
}

func (r *PDFRenderer) Render(fields []models.FieldSpec, values map[string]string, language string) ([]byte, error) {
	pdf := r.build(fields, values, language)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) build(fields []models.FieldSpec, values map[string]string, language string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	// Core fonts are cp1252; runes outside it print as '.'.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	centerText(pdf, 20, tr(Title))

	pdf.SetFont("Helvetica", "", 12)
	centerText(pdf, 30, tr("Generated on "+r.now().Format("2 January 2006")))

	y := 50.0
	for _, f := range fields {
		if y > pageBreakAfter {
			pdf.AddPage()
			y = topAfterBreak
		}

		pdf.SetFont("Helvetica", "B", 14)
		pdf.Text(leftMargin, y, tr(f.Question))

		value := values[f.ID]
		if value == "" {
			value = NotProvided
		}
		pdf.SetFont("Helvetica", "", 12)
		lines := pdf.SplitLines([]byte(tr(value)), valueWidth)
		for i, line := range lines {
			pdf.Text(leftMargin, y+7+float64(i)*5, string(line))
		}
		y += 7 + float64(len(lines))*5 + 10
	}

	footerY := y + 10
	if footerY > pageBreakAfter {
		pdf.AddPage()
		footerY = topAfterBreak
	}
	pdf.SetFont("Helvetica", "I", 10)
	centerText(pdf, footerY, tr(footerNotice))
	centerText(pdf, footerY+7, tr(fmt.Sprintf("Language: %s | Please review all information for accuracy.", language)))
	return pdf
}

func centerText(pdf *gofpdf.Fpdf, y float64, s string) {
	w := pdf.GetStringWidth(s)
	pdf.Text((pageWidth-w)/2, y, s)
}
