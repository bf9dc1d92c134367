package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/domain"
)

// buildPDF renders the print variant of a report: white background,
// one table per sheet, no interactive chrome. Column widths share the
// printable width evenly; tables never start within two lines of the
// page end so headers are not orphaned.
func buildPDF(title string, generatedAt time.Time, sheets []Sheet) ([]byte, error) {
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyData
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(277, 10, title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(277, 6, fmt.Sprintf("Generated %s", generatedAt.Format("2006-01-02 15:04 MST")))
	pdf.Ln(10)

	for _, sheet := range sheets {
		if len(sheet.Rows) == 0 {
			continue
		}
		keys := headerKeys(sheet.Rows[0])
		colWidth := 277.0 / float64(len(keys))

		if pdf.GetY() > 170 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(277, 8, sheet.Name)
		pdf.Ln(9)

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(240, 240, 240)
		for _, key := range keys {
			pdf.CellFormat(colWidth, 7, key, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, row := range sheet.Rows {
			if pdf.GetY() > 185 {
				pdf.AddPage()
			}
			for _, key := range keys {
				value, _ := row.Get(key)
				pdf.CellFormat(colWidth, 6, value, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailure, err)
	}
	return buf.Bytes(), nil
}
