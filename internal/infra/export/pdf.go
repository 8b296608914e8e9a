package export

import (
	"bytes"
	"fmt"
	"time"

	"hydro-command/internal/usecase/queries"

	"github.com/jung-kurt/gofpdf"
)

var pdfColumns = []float64{42, 24, 18, 22, 26, 26, 26}

func renderPDF(report *queries.ExportReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Hydro Nexus Telemetry Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Device: %s", report.DeviceID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Window: %s to %s", report.From.UTC().Format(time.RFC3339), report.To.UTC().Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Interval: %d min", report.IntervalMinutes))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	for i, h := range header {
		pdf.CellFormat(pdfColumns[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, r := range rows(report) {
		for i, c := range r.cells() {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(pdfColumns[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(report.Alerts) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Alerts (%d)", len(report.Alerts)))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 9)
		for _, a := range report.Alerts {
			pdf.MultiCell(0, 5, fmt.Sprintf("%s  [%s] %s", a.Timestamp.UTC().Format(time.RFC3339), a.Severity, a.Message), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
