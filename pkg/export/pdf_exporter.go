package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders reports into basic tabular PDF documents.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render writes a PDF document with a title heading and one table per section.
func (e *PDFExporter) Render(w io.Writer, report Report) error {
	if len(report.Sections) == 0 {
		return fmt.Errorf("pdf requires at least one section")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if report.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(report.Title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	for _, section := range report.Sections {
		if err := renderSection(pdf, section); err != nil {
			return err
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func renderSection(pdf *gofpdf.Fpdf, section Section) error {
	if len(section.Data.Headers) == 0 {
		return fmt.Errorf("pdf section %q requires at least one header", section.Title)
	}

	if section.Title != "" {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 9, section.Title, "", 1, "L", false, 0, "")
		pdf.Ln(1)
	}

	pdf.SetFont("Arial", "B", 10)
	colWidth := 190.0 / float64(len(section.Data.Headers))
	for _, header := range section.Data.Headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range section.Data.Rows {
		for _, header := range section.Data.Headers {
			pdf.CellFormat(colWidth, 7, row[header], "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
	return nil
}
