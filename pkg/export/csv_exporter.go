package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVExporter renders report sections as CSV.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render writes CSV output. Sections are separated by a blank line with the
// section title on its own row.
func (e *CSVExporter) Render(w io.Writer, report Report) error {
	if len(report.Sections) == 0 {
		return fmt.Errorf("csv requires at least one section")
	}
	writer := csv.NewWriter(w)
	for i, section := range report.Sections {
		if len(section.Data.Headers) == 0 {
			return fmt.Errorf("csv section %q requires at least one header", section.Title)
		}
		if i > 0 {
			if err := writer.Write([]string{}); err != nil {
				return fmt.Errorf("write csv separator: %w", err)
			}
		}
		if section.Title != "" {
			if err := writer.Write([]string{section.Title}); err != nil {
				return fmt.Errorf("write csv title: %w", err)
			}
		}
		if err := writer.Write(section.Data.Headers); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
		for _, row := range section.Data.Rows {
			record := make([]string, len(section.Data.Headers))
			for j, header := range section.Data.Headers {
				record[j] = row[header]
			}
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
