package export

import (
	"bytes"
	"fmt"
	"time"

	"hydro-command/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	readingsSheet = "readings"
	alertsSheet   = "alerts"
)

func renderXLSX(report *queries.ExportReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", readingsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(alertsSheet); err != nil {
		return nil, err
	}

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(readingsSheet, cell, h)
	}
	for i, r := range rows(report) {
		n := i + 2
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("A%d", n), r.Time)
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("B%d", n), r.Temperature)
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("C%d", n), r.PH)
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("D%d", n), r.EC)
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("E%d", n), r.Moisture)
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("F%d", n), r.Humidity)
		_ = f.SetCellValue(readingsSheet, fmt.Sprintf("G%d", n), r.ReadingCount)
	}

	_ = f.SetCellValue(alertsSheet, "A1", "Timestamp")
	_ = f.SetCellValue(alertsSheet, "B1", "Parameter")
	_ = f.SetCellValue(alertsSheet, "C1", "Severity")
	_ = f.SetCellValue(alertsSheet, "D1", "Message")
	for i, a := range report.Alerts {
		n := i + 2
		_ = f.SetCellValue(alertsSheet, fmt.Sprintf("A%d", n), a.Timestamp.UTC().Format(time.RFC3339))
		_ = f.SetCellValue(alertsSheet, fmt.Sprintf("B%d", n), a.Parameter)
		_ = f.SetCellValue(alertsSheet, fmt.Sprintf("C%d", n), a.Severity)
		_ = f.SetCellValue(alertsSheet, fmt.Sprintf("D%d", n), a.Message)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
