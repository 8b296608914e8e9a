//go:build unit

package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"hydro-command/internal/infra/export"
	"hydro-command/internal/pkg/errs"
	"hydro-command/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var to = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func report() *queries.ExportReport {
	return &queries.ExportReport{
		DeviceID:        "bag-1",
		Hours:           24,
		IntervalMinutes: 60,
		From:            to.Add(-24 * time.Hour),
		To:              to,
		Buckets: []queries.ExportBucket{
			{Bucket: to.Add(-2 * time.Hour), Temperature: 25.44, PH: 6.126, EC: 2.004, Moisture: 70.4, Humidity: 61.6, ReadingCount: 12},
			{Bucket: to.Add(-time.Hour), Temperature: 26.06, PH: 6.2, EC: 1.9, Moisture: 69, Humidity: 60, ReadingCount: 11},
		},
		Alerts: []queries.AlertView{
			{DeviceID: "bag-1", Parameter: "water_level", Message: "Water level is below required level", Severity: "alert", Timestamp: to.Add(-90 * time.Minute)},
		},
	}
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		in   string
		want export.Format
	}{
		{in: "", want: export.FormatCSV},
		{in: "JSON", want: export.FormatJSON},
		{in: " xlsx ", want: export.FormatXLSX},
		{in: "pdf", want: export.FormatPDF},
	}
	for _, tc := range testCases {
		got, err := export.ParseFormat(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := export.ParseFormat("xml")
	assert.True(t, errs.Is(err, errs.ErrDomainValidation))
}

func TestRender_CSV(t *testing.T) {
	doc, err := export.Render(export.FormatCSV, report())
	require.NoError(t, err)

	assert.Equal(t, "text/csv; charset=utf-8", doc.ContentType)
	assert.Equal(t, "hydro-nexus_bag-1_24h.csv", doc.Filename)

	lines := strings.Split(strings.TrimSpace(string(doc.Body)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Timestamp,Temperature_C,pH,EC_mScm,Moisture_pct,Humidity_pct,ReadingCount", lines[0])
	assert.Equal(t, "2025-06-01T10:00:00Z,25.4,6.13,2,70,62,12", lines[1])
}

func TestRender_JSON(t *testing.T) {
	doc, err := export.Render(export.FormatJSON, report())
	require.NoError(t, err)

	var got struct {
		DeviceID   string `json:"deviceId"`
		DataPoints int    `json:"dataPoints"`
		Data       []struct {
			Temperature float64 `json:"temperature"`
		} `json:"data"`
		Alerts []struct {
			Parameter string `json:"parameter"`
		} `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(doc.Body, &got))
	assert.Equal(t, "bag-1", got.DeviceID)
	assert.Equal(t, 2, got.DataPoints)
	assert.Equal(t, 26.1, got.Data[1].Temperature)
	require.Len(t, got.Alerts, 1)
	assert.Equal(t, "water_level", got.Alerts[0].Parameter)
}

func TestRender_XLSX(t *testing.T) {
	doc, err := export.Render(export.FormatXLSX, report())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Body))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("readings", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Temperature_C", header)

	count, err := f.GetCellValue("readings", "G3")
	require.NoError(t, err)
	assert.Equal(t, "11", count)

	msg, err := f.GetCellValue("alerts", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Water level is below required level", msg)
}

func TestRender_PDF(t *testing.T) {
	doc, err := export.Render(export.FormatPDF, report())
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Body, []byte("%PDF-")))
}
